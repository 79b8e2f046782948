package usecase

import (
	"github.com/monapi/ledger/internal/core/models"
	"github.com/shopspring/decimal"
)

// OpeningBalance is the pre-existing balance the ledger started from.
// It is not modeled as a transaction.
var OpeningBalance = decimal.NewFromInt(95150)

// ComputeStats aggregates totals over the full transaction set. The set
// is assumed small enough that recomputing on every call is cheaper
// than maintaining running sums.
func ComputeStats(transactions []models.Transaction) models.Stats {
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero

	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TypeCredit:
			totalCredit = totalCredit.Add(transaction.Amount)
		case models.TypeDebit:
			totalDebit = totalDebit.Add(transaction.Amount)
		}
	}

	return models.Stats{
		TotalCredit:      totalCredit,
		TotalDebit:       totalDebit,
		Balance:          totalCredit.Sub(totalDebit).Add(OpeningBalance),
		TransactionCount: len(transactions),
	}
}
