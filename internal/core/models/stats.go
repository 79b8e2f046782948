package models

import "github.com/shopspring/decimal"

// Stats содержит агрегированные показатели по всем транзакциям
type Stats struct {
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}
