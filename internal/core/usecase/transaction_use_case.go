package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/monapi/ledger/internal/core/logger"
	"github.com/monapi/ledger/internal/core/models"
	"github.com/monapi/ledger/internal/core/repository"
)

type TransactionUsecase interface {
	List(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Create(ctx context.Context, input models.TransactionInput) (*models.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, input models.TransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*models.Stats, error)
}

type transactionUsecase struct {
	repo repository.TransactionRepository
	log  logger.Logger
}

func NewTransactionUsecase(repo repository.TransactionRepository, log logger.Logger) TransactionUsecase {
	return &transactionUsecase{repo: repo, log: log}
}

func (uc *transactionUsecase) List(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("Transaction listing failed", logger.ErrorField("error", err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (uc *transactionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		uc.log.Error("Transaction lookup failed",
			logger.ErrorField("error", err),
			logger.StringField("transaction_id", id.String()))
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return transaction, nil
}

func (uc *transactionUsecase) Create(ctx context.Context, input models.TransactionInput) (*models.Transaction, error) {
	if validationErr := ValidateInput(input); validationErr != nil {
		uc.log.Warn("Invalid transaction input", logger.StringField("reason", validationErr.Error()))
		return nil, validationErr
	}

	created, err := uc.repo.Create(ctx, buildTransaction(uuid.Nil, input))
	if err != nil {
		uc.log.Error("Transaction create failed", logger.ErrorField("error", err))
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	uc.log.Info("Transaction created",
		logger.StringField("transaction_id", created.ID.String()),
		logger.StringField("type", string(created.Type)),
		logger.StringField("amount", created.Amount.String()))

	return created, nil
}

func (uc *transactionUsecase) Update(ctx context.Context, id uuid.UUID, input models.TransactionInput) (*models.Transaction, error) {
	if validationErr := ValidateInput(input); validationErr != nil {
		uc.log.Warn("Invalid transaction input",
			logger.StringField("transaction_id", id.String()),
			logger.StringField("reason", validationErr.Error()))
		return nil, validationErr
	}

	// Full replace: every field comes from the input, an omitted date
	// falls back to now exactly as it does on create.
	updated, err := uc.repo.Update(ctx, buildTransaction(id, input))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		uc.log.Error("Transaction update failed",
			logger.ErrorField("error", err),
			logger.StringField("transaction_id", id.String()))
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	uc.log.Info("Transaction updated", logger.StringField("transaction_id", updated.ID.String()))

	return updated, nil
}

func (uc *transactionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		uc.log.Error("Transaction delete failed",
			logger.ErrorField("error", err),
			logger.StringField("transaction_id", id.String()))
		return fmt.Errorf("delete transaction: %w", err)
	}

	uc.log.Info("Transaction deleted", logger.StringField("transaction_id", id.String()))

	return nil
}

func (uc *transactionUsecase) Stats(ctx context.Context) (*models.Stats, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("Stats computation failed", logger.ErrorField("error", err))
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	stats := ComputeStats(transactions)
	return &stats, nil
}

func buildTransaction(id uuid.UUID, input models.TransactionInput) models.Transaction {
	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return models.Transaction{
		ID:        id,
		Recipient: strings.TrimSpace(input.Recipient),
		Amount:    *input.Amount,
		Type:      input.Type,
		Category:  strings.TrimSpace(input.Category),
		Date:      date,
	}
}
