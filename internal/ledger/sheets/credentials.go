package sheets

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/diewo77/cartoes/internal/ledger"
)

// Scopes grants read/write on spreadsheets and access to the hosting drive.
var Scopes = []string{sheets.SpreadsheetsScope, drive.DriveScope}

// credentials resolves the service account: environment JSON first, then the key file.
func (s *Store) credentials(ctx context.Context) (*google.Credentials, error) {
	if s.cfg.CredentialsEnv != "" {
		if raw, ok := s.lookupEnv(s.cfg.CredentialsEnv); ok && strings.TrimSpace(raw) != "" {
			return parseCredentials(ctx, []byte(raw), "env "+s.cfg.CredentialsEnv)
		}
	}
	if s.cfg.CredentialsFile == "" {
		return nil, &ledger.CredentialError{Kind: ledger.CredentialsMissing, Err: ledger.ErrNoCredentials}
	}
	data, err := s.readFile(s.cfg.CredentialsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ledger.CredentialError{Kind: ledger.CredentialsMissing, Source: s.cfg.CredentialsFile, Err: ledger.ErrNoCredentials}
	}
	if err != nil {
		return nil, &ledger.CredentialError{Kind: ledger.CredentialsMalformed, Source: s.cfg.CredentialsFile, Err: err}
	}
	return parseCredentials(ctx, data, s.cfg.CredentialsFile)
}

func parseCredentials(ctx context.Context, data []byte, source string) (*google.Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, &ledger.CredentialError{Kind: ledger.CredentialsMalformed, Source: source, Err: err}
	}
	return creds, nil
}
