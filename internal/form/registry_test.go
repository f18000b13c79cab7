package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetCreatesOncePerID(t *testing.T) {
	r := NewRegistry(Options{})
	a := r.Get("a")
	assert.Same(t, a, r.Get("a"))
	assert.NotSame(t, a, r.Get("b"))
	assert.Equal(t, 2, r.Len())
}

func TestRegistrySweepDropsIdleSessions(t *testing.T) {
	now := fixedNow
	r := NewRegistry(Options{Now: func() time.Time { return now }})
	r.Get("old")
	now = now.Add(2 * time.Hour)
	fresh := r.Get("fresh")
	require.NoError(t, fresh.Update(filledDraft("5")))

	removed := r.Sweep(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
	assert.Same(t, fresh, r.Get("fresh"))
}
