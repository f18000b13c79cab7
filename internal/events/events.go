// Package events announces recorded expenses to other systems.
package events

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
)

// ExpenseRecorded is published once per successful append.
type ExpenseRecorded struct {
	ID         string           `json:"id"`
	RecordedAt time.Time        `json:"recorded_at"`
	Row        models.LedgerRow `json:"row"`
}

type Publisher interface {
	Publish(ctx context.Context, event ExpenseRecorded) error
	Close() error
}

// Notify wraps store so every successful append is followed by an
// ExpenseRecorded event. A failed publish is logged; the row is already written.
func Notify(store ledger.Store, pub Publisher) ledger.Store {
	return ledger.StoreFunc(func(ctx context.Context, row models.LedgerRow) error {
		if err := store.Append(ctx, row); err != nil {
			return err
		}
		ev := ExpenseRecorded{ID: uuid.NewString(), RecordedAt: time.Now().UTC(), Row: row}
		if err := pub.Publish(ctx, ev); err != nil {
			log.Printf("publish expense_recorded %s: %v", ev.ID, err)
		}
		return nil
	})
}
