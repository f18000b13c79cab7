package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/cartoes/i18n"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/models"
	"github.com/diewo77/cartoes/internal/money"
	"github.com/diewo77/cartoes/session"
	"github.com/diewo77/cartoes/validation"
	"github.com/diewo77/cartoes/view"
)

const flashCookie = "flash"

// Banner is a message shown above the form.
type Banner struct {
	Kind    string // success, warning, error
	Message string
}

// FormHandler serves the single-page expense form.
type FormHandler struct {
	Sessions *form.Registry
	Store    ledger.Store
	Timeout  time.Duration
}

func NewFormHandler(sessions *form.Registry, store ledger.Store, timeout time.Duration) *FormHandler {
	return &FormHandler{Sessions: sessions, Store: store, Timeout: timeout}
}

func (h *FormHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Show)
	mux.HandleFunc("POST /preview", h.Preview)
	mux.HandleFunc("POST /submit", h.Submit)
	mux.HandleFunc("POST /reset", h.Reset)
	mux.HandleFunc("POST /api/preview", h.APIPreview)
	mux.HandleFunc("POST /api/entries", h.APICreate)
}

func (h *FormHandler) session(r *http.Request) *form.Session {
	id, ok := session.IDFromContext(r.Context())
	if !ok {
		id = "anonymous"
	}
	return h.Sessions.Get(id)
}

// Show renders the current draft. A pending flash cookie becomes a banner.
func (h *FormHandler) Show(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	var banner *Banner
	if c, err := r.Cookie(flashCookie); err == nil {
		code, derr := url.QueryUnescape(c.Value)
		if derr != nil {
			code = c.Value
		}
		banner = &Banner{Kind: "success", Message: i18n.T(i18n.LangFromContext(r.Context()), code)}
		http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	}
	h.render(w, r, http.StatusOK, s, s.Draft(), banner, nil)
}

// Preview stores the edited fields and re-renders the derived values.
func (h *FormHandler) Preview(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	d, v, ok := h.parseForm(w, r, s)
	if !ok {
		return
	}
	if err := s.Update(d); err != nil {
		h.renderError(w, r, s, err)
		return
	}
	status := http.StatusOK
	if !v.Empty() {
		status = http.StatusBadRequest
	}
	h.render(w, r, status, s, d, nil, v)
}

// Submit stores the edited fields and appends them to the ledger.
// Success redirects back to a blank form; any failure keeps the draft.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	d, v, ok := h.parseForm(w, r, s)
	if !ok {
		return
	}
	if err := s.Update(d); err != nil {
		h.renderError(w, r, s, err)
		return
	}
	if !v.Empty() {
		h.renderError(w, r, s, &form.ValidationWarning{Violations: v})
		return
	}

	ctx, cancel := h.submitContext(r.Context())
	defer cancel()
	row, err := s.Submit(ctx, h.Store)
	if err != nil {
		log.Printf("submit failed: %v", err)
		h.renderError(w, r, s, err)
		return
	}
	log.Printf("recorded purchase %s %s/%s R$ %s x%d", row.Date, row.Buyer, row.Card, money.FormatBRL(row.Amount), row.InstallmentCount)
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: url.QueryEscape("success"), Path: "/"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset discards the draft.
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	if err := s.Reset(); err != nil {
		h.renderError(w, r, s, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *FormHandler) submitContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.Timeout)
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, s *form.Session, d models.Draft, banner *Banner, errs validation.Violations) {
	opts := s.Options()
	count := d.InstallmentCount
	if count < models.MinInstallments {
		count = models.MinInstallments
	}
	data := map[string]any{
		"Draft":           d,
		"Derived":         form.Recompute(d),
		"DateValue":       d.PurchaseDate.Format("2006-01-02"),
		"AmountValue":     d.Amount.StringFixed(2),
		"CountValue":      count,
		"Buyers":          opts.Buyers,
		"Cards":           opts.Cards,
		"Banner":          banner,
		"Errors":          errs,
		"Busy":            s.State() == form.StateSubmitting,
		"MinInstallments": models.MinInstallments,
		"MaxInstallments": models.MaxInstallments,
		"MaxDescription":  models.MaxDescriptionLength,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.Render(w, r, "form.html", data); err != nil {
		log.Printf("render form: %v", err)
		_, _ = w.Write([]byte("template render error: " + err.Error()))
	}
}

// renderError shows err as a banner above the preserved draft.
func (h *FormHandler) renderError(w http.ResponseWriter, r *http.Request, s *form.Session, err error) {
	lang := i18n.LangFromContext(r.Context())
	status, code := classify(err)
	banner := &Banner{Kind: "error", Message: i18n.T(lang, code)}
	var errs validation.Violations
	var warn *form.ValidationWarning
	switch {
	case errors.As(err, &warn):
		banner.Kind = "warning"
		errs = warn.Violations
		if errs["amount"] == "must_be_positive" {
			banner.Message = i18n.T(lang, "amount_must_be_positive")
		}
	case errors.Is(err, form.ErrBusy):
		banner.Kind = "warning"
	case strings.Contains(banner.Message, "%s"):
		banner.Message = strings.Replace(banner.Message, "%s", err.Error(), 1)
	}
	h.render(w, r, status, s, s.Draft(), banner, errs)
}

// classify maps a submission error to an HTTP status and translation code.
func classify(err error) (int, string) {
	var (
		warn  *form.ValidationWarning
		cred  *ledger.CredentialError
		conn  *ledger.ConnectionError
		write *ledger.WriteError
	)
	switch {
	case errors.As(err, &warn):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, form.ErrBusy):
		return http.StatusConflict, "busy"
	case errors.As(err, &cred):
		return http.StatusServiceUnavailable, "credential_error"
	case errors.As(err, &conn):
		return http.StatusBadGateway, "connection_error"
	case errors.As(err, &write):
		return http.StatusBadGateway, "write_error"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "write_error"
	default:
		return http.StatusInternalServerError, "unexpected_error"
	}
}

// parseForm reads the posted fields into a draft. Unparseable values are
// reported as violations and left at their zero value.
func (h *FormHandler) parseForm(w http.ResponseWriter, r *http.Request, s *form.Session) (models.Draft, validation.Violations, bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid form"))
		return models.Draft{}, nil, false
	}
	v := validation.Violations{}
	d := models.NewDraft(s.Options().Now())

	if raw := strings.TrimSpace(r.FormValue("purchase_date")); raw != "" {
		if t, err := models.ParseDate(raw); err == nil {
			d.PurchaseDate = t
		} else {
			v["purchase_date"] = "invalid_date"
		}
	}
	d.Buyer = strings.TrimSpace(r.FormValue("buyer"))
	d.Card = strings.TrimSpace(r.FormValue("card"))
	if amount, err := money.ParseAmount(r.FormValue("amount")); err == nil {
		d.Amount = amount
	} else {
		v["amount"] = amountViolation(err)
	}
	d.IsInstallment = isChecked(r.FormValue("is_installment"))
	d.InstallmentCount = 1
	if d.IsInstallment {
		d.InstallmentCount = models.MinInstallments
	}
	if raw := strings.TrimSpace(r.FormValue("installment_count")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			d.InstallmentCount = n
		} else {
			v["installment_count"] = "invalid_number"
		}
	}
	d.Description = strings.ReplaceAll(r.FormValue("description"), "\r\n", "\n")
	return d, v, true
}

func amountViolation(err error) string {
	if errors.Is(err, money.ErrTooLarge) {
		return "out_of_range"
	}
	return "invalid_number"
}

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "1", "true", "yes", "sim":
		return true
	}
	return false
}
