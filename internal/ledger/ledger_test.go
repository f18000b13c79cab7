package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/ledger/memory"
	"github.com/diewo77/cartoes/internal/models"
)

func TestMirrorWritesCopiesAfterPrimary(t *testing.T) {
	primary := memory.NewStore()
	mirror := memory.NewStore()
	s := ledger.Mirror(primary, mirror)

	require.NoError(t, s.Append(context.Background(), models.LedgerRow{Buyer: "Telma"}))
	assert.Len(t, primary.Rows(), 1)
	assert.Len(t, mirror.Rows(), 1)
}

func TestMirrorSkipsCopiesWhenPrimaryFails(t *testing.T) {
	primary := memory.NewStore()
	primary.FailWith(&ledger.WriteError{Target: "Pagina1", Err: errors.New("boom")})
	mirror := memory.NewStore()

	err := ledger.Mirror(primary, mirror).Append(context.Background(), models.LedgerRow{})
	var we *ledger.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 0, mirror.Calls())
}

func TestMirrorIgnoresCopyFailure(t *testing.T) {
	primary := memory.NewStore()
	mirror := memory.NewStore()
	mirror.FailWith(errors.New("disk full"))

	require.NoError(t, ledger.Mirror(primary, mirror).Append(context.Background(), models.LedgerRow{}))
	assert.Len(t, primary.Rows(), 1)
}

func TestErrorMessagesAndUnwrap(t *testing.T) {
	cerr := &ledger.CredentialError{Kind: ledger.CredentialsMissing, Err: ledger.ErrNoCredentials}
	assert.ErrorIs(t, cerr, ledger.ErrNoCredentials)
	assert.Contains(t, cerr.Error(), "no credentials")

	malformed := &ledger.CredentialError{Kind: ledger.CredentialsMalformed, Source: "key.json", Err: errors.New("bad json")}
	assert.Equal(t, "malformed credentials (key.json): bad json", malformed.Error())

	conn := &ledger.ConnectionError{Spreadsheet: "Pessoal", Worksheet: "Pagina1", Err: ledger.ErrWorksheetNotFound}
	assert.ErrorIs(t, conn, ledger.ErrWorksheetNotFound)
	assert.Equal(t, "connect Pessoal/Pagina1: worksheet not found", conn.Error())
}
