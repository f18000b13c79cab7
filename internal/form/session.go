// Package form holds the per-user expense draft and its submit flow.
package form

import (
	"context"
	"sync"
	"time"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
	"github.com/diewo77/cartoes/internal/money"
	"github.com/diewo77/cartoes/validation"
)

// State is the submit state of a session.
type State int

const (
	StateEditing State = iota
	StateSubmitting
)

func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "editing"
}

// Options configures the selectable values and validation strictness.
type Options struct {
	Buyers []string
	Cards  []string
	// AllowUnsetSelectors accepts a submission with no buyer or card chosen.
	AllowUnsetSelectors bool
	Now                 func() time.Time
}

// Session owns one draft. All methods are safe for concurrent use; at most
// one Submit runs at a time.
type Session struct {
	opts Options

	mu       sync.Mutex
	draft    models.Draft
	state    State
	lastSeen time.Time
}

func NewSession(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now()
	return &Session{opts: opts, draft: models.NewDraft(now), lastSeen: now}
}

func (s *Session) Options() Options { return s.opts }

// Draft returns a copy of the current draft.
func (s *Session) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Derived recomputes the display values of the current draft.
func (s *Session) Derived() Derived {
	return Recompute(s.Draft())
}

// Update replaces the draft with the edited values. Edits are refused while
// a submission is in flight so the submitted snapshot stays what the user sees.
func (s *Session) Update(d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.opts.Now()
	if s.state == StateSubmitting {
		return ErrBusy
	}
	s.draft = d
	return nil
}

// Reset discards the draft.
func (s *Session) Reset() error {
	return s.Update(models.NewDraft(s.opts.Now()))
}

// Validate reports every violation of d.
func (s *Session) Validate(d models.Draft) validation.Violations {
	v := validation.Violations{}
	switch {
	case !money.InRange(d.Amount):
		v["amount"] = "out_of_range"
	case !money.HasCents(d.Amount):
		v["amount"] = "invalid_number"
	default:
		validation.PositiveDecimal("amount", d.Amount, v)
	}
	if d.IsInstallment {
		validation.RangeInt("installment_count", d.InstallmentCount, models.MinInstallments, models.MaxInstallments, v)
	}
	validation.MaxRunes("description", d.Description, models.MaxDescriptionLength, v)
	if !s.opts.AllowUnsetSelectors {
		validation.Required("buyer", d.Buyer, v)
		validation.Required("card", d.Card, v)
	}
	validation.OneOf("buyer", d.Buyer, s.opts.Buyers, v)
	validation.OneOf("card", d.Card, s.opts.Cards, v)
	return v
}

// Submit appends the current draft through store. A rejected draft returns a
// *ValidationWarning without calling store. On success the draft is reset to
// a blank one; on failure it is left exactly as it was.
func (s *Session) Submit(ctx context.Context, store ledger.Store) (models.LedgerRow, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return models.LedgerRow{}, ErrBusy
	}
	d := s.draft
	if v := s.Validate(d); !v.Empty() {
		s.mu.Unlock()
		return models.LedgerRow{}, &ValidationWarning{Violations: v}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	row := models.RowFromDraft(d, Recompute(d).AmountInWords)
	err := store.Append(ctx, row)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
	s.lastSeen = s.opts.Now()
	if err != nil {
		return row, err
	}
	s.draft = models.NewDraft(s.opts.Now())
	return row, nil
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
