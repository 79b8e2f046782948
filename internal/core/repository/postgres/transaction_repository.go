package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/monapi/ledger/internal/core/logger"
	"github.com/monapi/ledger/internal/core/models"
	"github.com/monapi/ledger/internal/core/repository"
)

type postgresTransactionRepo struct {
	db  *sqlx.DB
	log logger.Logger
}

func NewPostgresTransactionRepo(db *sqlx.DB, log logger.Logger) repository.TransactionRepository {
	return &postgresTransactionRepo{
		db:  db,
		log: log,
	}
}

const transactionColumns = `id, recipient, amount, type, category, date, created_at, updated_at`

func (r *postgresTransactionRepo) List(ctx context.Context) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	return transactions, nil
}

func (r *postgresTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	err := r.db.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("error getting transaction: %w", err)
	}

	return &transaction, nil
}

func (r *postgresTransactionRepo) Create(ctx context.Context, transaction models.Transaction) (*models.Transaction, error) {
	transaction.ID = uuid.New()
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	const query = `INSERT INTO transactions
		(id, recipient, amount, type, category, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		transaction.ID,
		transaction.Recipient,
		transaction.Amount,
		transaction.Type,
		transaction.Category,
		transaction.Date,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return &transaction, nil
}

func (r *postgresTransactionRepo) Update(ctx context.Context, transaction models.Transaction) (*models.Transaction, error) {
	transaction.UpdatedAt = time.Now().UTC()

	const query = `UPDATE transactions
		SET recipient = $1, amount = $2, type = $3, category = $4, date = $5, updated_at = $6
		WHERE id = $7
		RETURNING created_at`

	err := r.db.GetContext(ctx, &transaction.CreatedAt, query,
		transaction.Recipient,
		transaction.Amount,
		transaction.Type,
		transaction.Category,
		transaction.Date,
		transaction.UpdatedAt,
		transaction.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("error updating transaction: %w", err)
	}

	return &transaction, nil
}

func (r *postgresTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
