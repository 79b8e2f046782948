// Package memory holds transactions in process memory behind the same
// interface as the postgres repository. It backs the unit tests and lets
// the server run without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/monapi/ledger/internal/core/models"
	"github.com/monapi/ledger/internal/core/repository"
)

type Store struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Transaction
}

func NewStore() *Store {
	return &Store{items: make(map[uuid.UUID]models.Transaction)}
}

func (s *Store) List(_ context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.Transaction, 0, len(s.items))
	for _, transaction := range s.items {
		transactions = append(transactions, transaction)
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return transactions, nil
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transaction, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &transaction, nil
}

func (s *Store) Create(_ context.Context, transaction models.Transaction) (*models.Transaction, error) {
	transaction.ID = uuid.New()
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[transaction.ID] = transaction

	return &transaction, nil
}

func (s *Store) Update(_ context.Context, transaction models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[transaction.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	transaction.CreatedAt = existing.CreatedAt
	transaction.UpdatedAt = time.Now().UTC()
	s.items[transaction.ID] = transaction

	return &transaction, nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)

	return nil
}
