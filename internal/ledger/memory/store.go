// Package memory keeps appended rows in process, for tests and dry runs.
package memory

import (
	"context"
	"sync"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
)

type Store struct {
	mu    sync.Mutex
	rows  []models.LedgerRow
	calls int
	err   error
}

func NewStore() *Store {
	return &Store{}
}

// FailWith makes every following Append return err; nil restores success.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Store) Append(ctx context.Context, row models.LedgerRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := ctx.Err(); err != nil {
		return &ledger.WriteError{Target: "memory", Err: err}
	}
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

// Rows returns a copy of every appended row in arrival order.
func (s *Store) Rows() []models.LedgerRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LedgerRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Calls counts Append invocations, failed ones included.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var _ ledger.Store = (*Store)(nil)
