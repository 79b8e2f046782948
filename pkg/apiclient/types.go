package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType определяет направление движения средств
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
)

// Transaction is a ledger record as the API returns it. The ID is an
// opaque identifier assigned by the server.
type Transaction struct {
	ID        string          `json:"id"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TransactionInput carries the fields of a create or replace request.
// A nil Date lets the server default it to the current time.
type TransactionInput struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Date      *time.Time      `json:"date,omitempty"`
}

// Stats are the aggregate totals over the full transaction set.
type Stats struct {
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}
