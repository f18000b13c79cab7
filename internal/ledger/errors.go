package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrNoCredentials       = errors.New("no credential source available")
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	ErrWorksheetNotFound   = errors.New("worksheet not found")
)

// CredentialKind tells a missing credential apart from an unusable one.
type CredentialKind int

const (
	CredentialsMissing CredentialKind = iota
	CredentialsMalformed
)

func (k CredentialKind) String() string {
	if k == CredentialsMalformed {
		return "malformed credentials"
	}
	return "no credentials"
}

// CredentialError means no client could be authorized.
type CredentialError struct {
	Kind   CredentialKind
	Source string
	Err    error
}

func (e *CredentialError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Source, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// ConnectionError means the spreadsheet or worksheet could not be reached by name.
type ConnectionError struct {
	Spreadsheet string
	Worksheet   string
	Err         error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s/%s: %v", e.Spreadsheet, e.Worksheet, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// WriteError means the append call failed after a successful connection.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("append to %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
