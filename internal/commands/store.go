package commands

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/diewo77/cartoes/internal/config"
	"github.com/diewo77/cartoes/internal/db"
	"github.com/diewo77/cartoes/internal/events"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/ledger/memory"
	"github.com/diewo77/cartoes/internal/ledger/sheets"
	"github.com/diewo77/cartoes/internal/ledger/sqlstore"
)

// backend is the assembled ledger with the resources it holds open.
type backend struct {
	Store   ledger.Store
	DB      *gorm.DB
	closers []func() error
}

func (b *backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// openBackend is swapped in tests.
var openBackend = buildBackend

// buildBackend picks the primary store, adds the SQL mirror and the Kafka
// notifier when configured.
func buildBackend(cfg *config.Config) (*backend, error) {
	b := &backend{}
	openDB := func() error {
		if b.DB != nil {
			return nil
		}
		conn, err := db.Open(cfg.Database)
		if err != nil {
			return err
		}
		if err := db.Migrate(conn); err != nil {
			return err
		}
		b.DB = conn
		if sqlDB, err := conn.DB(); err == nil {
			b.closers = append(b.closers, sqlDB.Close)
		}
		return nil
	}

	switch cfg.Ledger.Backend {
	case "sheets":
		b.Store = sheets.New(sheets.Config{
			SpreadsheetName: cfg.Ledger.SpreadsheetName,
			WorksheetName:   cfg.Ledger.WorksheetName,
			CredentialsEnv:  cfg.Ledger.CredentialsEnv,
			CredentialsFile: cfg.Ledger.CredentialsFile,
		})
		if cfg.Ledger.Mirror {
			if err := openDB(); err != nil {
				return nil, fmt.Errorf("opening mirror database: %w", err)
			}
			b.Store = ledger.Mirror(b.Store, sqlstore.New(b.DB))
		}
	case "sql":
		if err := openDB(); err != nil {
			return nil, fmt.Errorf("opening ledger database: %w", err)
		}
		b.Store = sqlstore.New(b.DB)
	case "memory":
		b.Store = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}

	if len(cfg.Events.Brokers) > 0 {
		pub := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		b.Store = events.Notify(b.Store, pub)
		b.closers = append(b.closers, pub.Close)
		log.Printf("publishing %s events to %v", cfg.Events.Topic, cfg.Events.Brokers)
	}
	return b, nil
}

func formOptions(cfg *config.Config) form.Options {
	return form.Options{
		Buyers:              cfg.Form.Buyers,
		Cards:               cfg.Form.Cards,
		AllowUnsetSelectors: cfg.Form.AllowUnsetSelectors,
	}
}
