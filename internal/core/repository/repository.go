package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/monapi/ledger/internal/core/models"
)

// ErrNotFound is returned when no transaction exists for the given id.
var ErrNotFound = errors.New("transaction not found")

// TransactionRepository is the persistence collaborator holding
// transaction records. Create assigns the id and both timestamps,
// Update overwrites every caller-supplied field and refreshes
// updated_at. List returns the full set ordered by date, newest first.
type TransactionRepository interface {
	List(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Create(ctx context.Context, transaction models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, transaction models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
