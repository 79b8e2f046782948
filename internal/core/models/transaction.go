package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType определяет направление движения средств
type TransactionType string

const (
	// TypeCredit - входящее движение средств
	TypeCredit TransactionType = "Credit"
	// TypeDebit - исходящее движение средств
	TypeDebit TransactionType = "Debit"
)

func (t TransactionType) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Transaction представляет одну запись о движении средств
type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Recipient string          `json:"recipient" db:"recipient"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Type      TransactionType `json:"type" db:"type"`
	Category  string          `json:"category" db:"category"`
	Date      time.Time       `json:"date" db:"date"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// TransactionInput представляет запрос на создание или полную замену
// транзакции. Amount is a pointer so a missing field can be told apart
// from an explicit zero.
type TransactionInput struct {
	Recipient string           `json:"recipient"`
	Amount    *decimal.Decimal `json:"amount"`
	Type      TransactionType  `json:"type"`
	Category  string           `json:"category"`
	Date      time.Time        `json:"date"`
}
