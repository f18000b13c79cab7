package form

import (
	"errors"
	"sort"
	"strings"

	"github.com/diewo77/cartoes/validation"
)

// ErrBusy is returned while a submission of the same session is in flight.
var ErrBusy = errors.New("form: submission already in progress")

// ValidationWarning rejects a draft before any store call.
type ValidationWarning struct {
	Violations validation.Violations
}

func (w *ValidationWarning) Error() string {
	fields := make([]string, 0, len(w.Violations))
	for f, code := range w.Violations {
		fields = append(fields, f+": "+code)
	}
	sort.Strings(fields)
	return "form: invalid draft (" + strings.Join(fields, ", ") + ")"
}
