// Package viewstate models the transaction-form client state as an
// explicit value with pure transition functions, independent of any
// rendering technology. Every transition returns a new View; callers
// hold the current one and replace it wholesale.
package viewstate

// Form holds the editable fields of the transaction form. Amount stays
// a string here: it is raw user input until the server validates it.
type Form struct {
	Recipient string
	Amount    string
	Type      string
	Category  string
}

// DefaultForm is the blank form for a new transaction.
func DefaultForm() Form {
	return Form{Type: "Debit"}
}

// View is the full client view state. The zero value is a closed,
// idle view with nothing loaded.
type View struct {
	Loading    bool
	Submitting bool
	Error      string
	ModalOpen  bool
	EditingID  string
	Form       Form
}

// Initial is the state before the first load completes.
func Initial() View {
	return View{Loading: true}
}

// OpenCreate opens the modal with a blank form.
func (v View) OpenCreate() View {
	v.ModalOpen = true
	v.EditingID = ""
	v.Form = DefaultForm()
	v.Error = ""
	return v
}

// OpenEdit opens the modal prefilled with an existing record's fields.
func (v View) OpenEdit(id string, form Form) View {
	v.ModalOpen = true
	v.EditingID = id
	v.Form = form
	v.Error = ""
	return v
}

// CloseModal dismisses the form without touching loaded data.
func (v View) CloseModal() View {
	v.ModalOpen = false
	v.EditingID = ""
	v.Form = DefaultForm()
	v.Submitting = false
	return v
}

func (v View) SetRecipient(value string) View {
	v.Form.Recipient = value
	return v
}

func (v View) SetAmount(value string) View {
	v.Form.Amount = value
	return v
}

func (v View) SetType(value string) View {
	v.Form.Type = value
	return v
}

func (v View) SetCategory(value string) View {
	v.Form.Category = value
	return v
}

// Editing reports whether the open form targets an existing record.
func (v View) Editing() bool {
	return v.EditingID != ""
}

// SubmitStart marks a save in flight.
func (v View) SubmitStart() View {
	v.Submitting = true
	v.Error = ""
	return v
}

// SubmitDone closes the form after a successful save. The caller is
// expected to re-fetch transactions and stats to resynchronize.
func (v View) SubmitDone() View {
	v.Submitting = false
	return v.CloseModal()
}

// SubmitFailed keeps the form open so the user can correct and retry.
func (v View) SubmitFailed(message string) View {
	v.Submitting = false
	v.Error = message
	return v
}

// LoadStart marks a full re-fetch in flight.
func (v View) LoadStart() View {
	v.Loading = true
	v.Error = ""
	return v
}

func (v View) LoadDone() View {
	v.Loading = false
	return v
}

func (v View) LoadFailed(message string) View {
	v.Loading = false
	v.Error = message
	return v
}

// DismissError clears the current alert.
func (v View) DismissError() View {
	v.Error = ""
	return v
}
