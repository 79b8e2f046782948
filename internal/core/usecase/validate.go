package usecase

import (
	"fmt"
	"strings"

	"github.com/monapi/ledger/internal/core/models"
)

// ValidateInput checks the constraints the transactions table enforces:
// recipient and category non-empty after trimming, amount present and
// non-negative, type one of the two known values. Returns nil when the
// input is acceptable.
func ValidateInput(input models.TransactionInput) *ValidationError {
	var fields []FieldError

	if strings.TrimSpace(input.Recipient) == "" {
		fields = append(fields, FieldError{Field: "recipient", Message: "recipient is required"})
	}

	switch {
	case input.Amount == nil:
		fields = append(fields, FieldError{Field: "amount", Message: "amount is required"})
	case input.Amount.IsNegative():
		fields = append(fields, FieldError{Field: "amount", Message: "amount must be non-negative"})
	}

	if !input.Type.Valid() {
		fields = append(fields, FieldError{
			Field:   "type",
			Message: fmt.Sprintf("type must be %q or %q", models.TypeCredit, models.TypeDebit),
		})
	}

	if strings.TrimSpace(input.Category) == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category is required"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
