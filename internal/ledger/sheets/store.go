// Package sheets appends ledger rows to a Google Sheets worksheet located by name.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// Config selects the target worksheet and where credentials come from.
type Config struct {
	SpreadsheetName string
	WorksheetName   string
	CredentialsEnv  string
	CredentialsFile string

	// Endpoint and HTTPClient override the Google endpoints; HTTPClient
	// replaces credential-based transport.
	Endpoint   string
	HTTPClient *http.Client
}

// Store opens a fresh authorized session on every Append.
type Store struct {
	cfg       Config
	lookupEnv func(string) (string, bool)
	readFile  func(string) ([]byte, error)
}

func New(cfg Config) *Store {
	return &Store{cfg: cfg, lookupEnv: os.LookupEnv, readFile: os.ReadFile}
}

// Worksheet is a connected, verified append target.
type Worksheet struct {
	svc           *sheets.Service
	SpreadsheetID string
	Title         string
}

// Append connects and performs exactly one append call.
func (s *Store) Append(ctx context.Context, row models.LedgerRow) error {
	ws, err := s.Connect(ctx)
	if err != nil {
		return err
	}
	return ws.AppendRow(ctx, row)
}

// Connect authorizes the clients, finds the spreadsheet by name through
// Drive and checks the worksheet exists.
func (s *Store) Connect(ctx context.Context) (*Worksheet, error) {
	creds, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}
	opts := []option.ClientOption{}
	if s.cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(s.cfg.HTTPClient))
	} else {
		opts = append(opts, option.WithCredentials(creds))
	}
	if s.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.cfg.Endpoint))
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, s.connErr(err)
	}
	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, s.connErr(err)
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(s.cfg.SpreadsheetName), spreadsheetMimeType)
	list, err := driveSvc.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, s.connErr(err)
	}
	if len(list.Files) == 0 {
		return nil, s.connErr(ledger.ErrSpreadsheetNotFound)
	}
	id := list.Files[0].Id

	ss, err := sheetsSvc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, s.connErr(err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == s.cfg.WorksheetName {
			return &Worksheet{svc: sheetsSvc, SpreadsheetID: id, Title: s.cfg.WorksheetName}, nil
		}
	}
	return nil, s.connErr(ledger.ErrWorksheetNotFound)
}

// AppendRow adds row after the last non-empty row of the worksheet.
func (w *Worksheet) AppendRow(ctx context.Context, row models.LedgerRow) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row.Values()}}
	_, err := w.svc.Spreadsheets.Values.Append(w.SpreadsheetID, a1Range(w.Title), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &ledger.WriteError{Target: w.Title, Err: err}
	}
	return nil
}

func (s *Store) connErr(err error) error {
	return &ledger.ConnectionError{Spreadsheet: s.cfg.SpreadsheetName, Worksheet: s.cfg.WorksheetName, Err: err}
}

func a1Range(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!A1"
}

func escapeQuery(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

var _ ledger.Store = (*Store)(nil)
