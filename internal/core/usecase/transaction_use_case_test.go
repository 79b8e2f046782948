package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monapi/ledger/internal/core/models"
	"github.com/monapi/ledger/internal/core/repository/memory"
	"github.com/monapi/ledger/internal/core/usecase"
)

func newUsecase() usecase.TransactionUsecase {
	return usecase.NewTransactionUsecase(memory.NewStore(), zap.NewNop())
}

func input(recipient string, amount int64, typ models.TransactionType, category string) models.TransactionInput {
	amt := decimal.NewFromInt(amount)
	return models.TransactionInput{
		Recipient: recipient,
		Amount:    &amt,
		Type:      typ,
		Category:  category,
	}
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, input("Alice", 1000, models.TypeCredit, "Salaire"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.Date.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Recipient)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, models.TypeCredit, got.Type)
	assert.Equal(t, "Salaire", got.Category)
}

func TestCreateTrimsRecipientAndCategory(t *testing.T) {
	uc := newUsecase()

	created, err := uc.Create(context.Background(), input("  Bob  ", 10, models.TypeDebit, "  Food "))
	require.NoError(t, err)
	assert.Equal(t, "Bob", created.Recipient)
	assert.Equal(t, "Food", created.Category)
}

func TestCreateValidation(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	cases := []struct {
		name  string
		input models.TransactionInput
		field string
	}{
		{"negative amount", input("Alice", -5, models.TypeCredit, "Salaire"), "amount"},
		{"missing amount", models.TransactionInput{Recipient: "Alice", Type: models.TypeCredit, Category: "Salaire"}, "amount"},
		{"empty recipient", input("   ", 5, models.TypeCredit, "Salaire"), "recipient"},
		{"empty category", input("Alice", 5, models.TypeCredit, ""), "category"},
		{"unknown type", input("Alice", 5, "Transfer", "Salaire"), "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.input)

			var validationErr *usecase.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tc.field, validationErr.Fields[0].Field)

			// Nothing persisted on a rejected input.
			transactions, listErr := uc.List(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, transactions)
		})
	}
}

func TestCreateZeroAmountAllowed(t *testing.T) {
	uc := newUsecase()

	created, err := uc.Create(context.Background(), input("Alice", 0, models.TypeDebit, "Food"))
	require.NoError(t, err)
	assert.True(t, created.Amount.IsZero())
}

func TestListOrdering(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	older := input("Alice", 10, models.TypeCredit, "Salaire")
	older.Date = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := input("Bob", 20, models.TypeDebit, "Food")
	newer.Date = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Create(ctx, older)
	require.NoError(t, err)
	_, err = uc.Create(ctx, newer)
	require.NoError(t, err)

	transactions, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Bob", transactions[0].Recipient)
	assert.Equal(t, "Alice", transactions[1].Recipient)
}

func TestUpdateReplacesFields(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, input("Alice", 1000, models.TypeCredit, "Salaire"))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, input("Alice B", 1200, models.TypeCredit, "Bonus"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alice B", updated.Recipient)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "Bonus", updated.Category)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, input("Alice", 1000, models.TypeCredit, "Salaire"))
	require.NoError(t, err)

	_, err = uc.Update(ctx, uuid.New(), input("Mallory", 1, models.TypeDebit, "Food"))
	assert.ErrorIs(t, err, usecase.ErrTransactionNotFound)

	transactions, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, created.ID, transactions[0].ID)
	assert.Equal(t, "Alice", transactions[0].Recipient)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, input("Alice", 1000, models.TypeCredit, "Salaire"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrTransactionNotFound)

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrTransactionNotFound)
}

func TestStatsOverStore(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, input("Alice", 1000, models.TypeCredit, "Salaire"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, input("Bob", 300, models.TypeDebit, "Food"))
	require.NoError(t, err)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.TotalCredit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stats.TotalDebit.Equal(decimal.NewFromInt(300)))
	assert.True(t, stats.Balance.Equal(decimal.NewFromInt(95850)))
	assert.Equal(t, 2, stats.TransactionCount)
}

var errStoreDown = errors.New("store unavailable")

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]models.Transaction, error) { return nil, errStoreDown }
func (failingRepo) GetByID(context.Context, uuid.UUID) (*models.Transaction, error) {
	return nil, errStoreDown
}
func (failingRepo) Create(context.Context, models.Transaction) (*models.Transaction, error) {
	return nil, errStoreDown
}
func (failingRepo) Update(context.Context, models.Transaction) (*models.Transaction, error) {
	return nil, errStoreDown
}
func (failingRepo) Delete(context.Context, uuid.UUID) error { return errStoreDown }

func TestStoreFailuresSurfaceToCaller(t *testing.T) {
	uc := usecase.NewTransactionUsecase(failingRepo{}, zap.NewNop())
	ctx := context.Background()

	_, err := uc.List(ctx)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = uc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, errStoreDown)

	_, err = uc.Create(ctx, input("Alice", 1, models.TypeCredit, "Salaire"))
	assert.ErrorIs(t, err, errStoreDown)

	_, err = uc.Update(ctx, uuid.New(), input("Alice", 1, models.TypeCredit, "Salaire"))
	assert.ErrorIs(t, err, errStoreDown)

	assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), errStoreDown)

	_, err = uc.Stats(ctx)
	assert.ErrorIs(t, err, errStoreDown)
}
