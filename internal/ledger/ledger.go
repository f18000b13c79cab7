// Package ledger appends purchase rows to the shared spreadsheet and its
// optional local copies.
package ledger

import (
	"context"
	"log"

	"github.com/diewo77/cartoes/internal/models"
)

// Store appends one row per call. Implementations never retry.
type Store interface {
	Append(ctx context.Context, row models.LedgerRow) error
}

// StoreFunc adapts a function to Store.
type StoreFunc func(ctx context.Context, row models.LedgerRow) error

func (f StoreFunc) Append(ctx context.Context, row models.LedgerRow) error { return f(ctx, row) }

// Mirror writes to primary and, only when that succeeds, to each copy.
// Copy failures are logged and never reported to the caller.
func Mirror(primary Store, copies ...Store) Store {
	return StoreFunc(func(ctx context.Context, row models.LedgerRow) error {
		if err := primary.Append(ctx, row); err != nil {
			return err
		}
		for _, c := range copies {
			if err := c.Append(ctx, row); err != nil {
				log.Printf("ledger mirror append failed: %v", err)
			}
		}
		return nil
	})
}
