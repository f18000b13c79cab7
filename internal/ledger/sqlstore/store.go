// Package sqlstore appends ledger rows to a local SQL table through gorm.
package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// Append inserts one ledger_rows record. Existing rows are never touched.
func (s *Store) Append(ctx context.Context, row models.LedgerRow) error {
	rec := models.RecordFromRow(row)
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return &ledger.WriteError{Target: rec.TableName(), Err: err}
	}
	return nil
}

var _ ledger.Store = (*Store)(nil)
