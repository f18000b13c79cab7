package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/cartoes/internal/ledger/memory"
	"github.com/diewo77/cartoes/internal/models"
)

type recordingPublisher struct {
	events []ExpenseRecorded
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev ExpenseRecorded) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestNotifyPublishesAfterAppend(t *testing.T) {
	store := memory.NewStore()
	pub := &recordingPublisher{}

	row := models.LedgerRow{Buyer: "Carlos", Card: "Marisa"}
	require.NoError(t, Notify(store, pub).Append(context.Background(), row))

	require.Len(t, pub.events, 1)
	assert.Equal(t, row, pub.events[0].Row)
	assert.NotEmpty(t, pub.events[0].ID)
	assert.Len(t, store.Rows(), 1)
}

func TestNotifySkipsEventWhenAppendFails(t *testing.T) {
	store := memory.NewStore()
	store.FailWith(errors.New("sheet gone"))
	pub := &recordingPublisher{}

	err := Notify(store, pub).Append(context.Background(), models.LedgerRow{})
	require.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestNotifyIgnoresPublishFailure(t *testing.T) {
	store := memory.NewStore()
	pub := &recordingPublisher{err: errors.New("broker down")}

	require.NoError(t, Notify(store, pub).Append(context.Background(), models.LedgerRow{}))
	assert.Len(t, store.Rows(), 1)
}
