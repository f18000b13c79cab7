package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/cartoes/httpx"
	"github.com/diewo77/cartoes/i18n"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/models"
	"github.com/diewo77/cartoes/internal/money"
	"github.com/diewo77/cartoes/validation"
)

type entryRequest struct {
	Date          string          `json:"date"`
	Buyer         string          `json:"buyer"`
	Card          string          `json:"card"`
	Amount        json.RawMessage `json:"amount"`
	IsInstallment *bool           `json:"is_installment,omitempty"`
	Installments  int             `json:"installments"`
	Description   string          `json:"description"`
}

type previewResponse struct {
	FormattedAmount      string `json:"formatted_amount"`
	FormattedInstallment string `json:"formatted_installment,omitempty"`
	AmountInWords        string `json:"amount_in_words"`
	Summary              string `json:"summary"`
}

// draft converts the request. Without an explicit flag, a count of two or
// more marks the purchase as installments.
func (req entryRequest) draft(today models.Draft) (models.Draft, validation.Violations) {
	v := validation.Violations{}
	d := today
	if raw := strings.TrimSpace(req.Date); raw != "" {
		t, err := models.ParseDate(raw)
		if err != nil {
			v["purchase_date"] = "invalid_date"
		} else {
			d.PurchaseDate = t
		}
	}
	d.Buyer = strings.TrimSpace(req.Buyer)
	d.Card = strings.TrimSpace(req.Card)
	if amount, err := parseJSONAmount(req.Amount); err == nil {
		d.Amount = amount
	} else {
		v["amount"] = amountViolation(err)
	}
	if req.IsInstallment != nil {
		d.IsInstallment = *req.IsInstallment
	} else {
		d.IsInstallment = req.Installments >= models.MinInstallments
	}
	d.InstallmentCount = 1
	if d.IsInstallment {
		d.InstallmentCount = req.Installments
	}
	d.Description = req.Description
	return d, v
}

// parseJSONAmount accepts the amount as a JSON number or string and runs it
// through the same parser as the form, so exponents and huge values are refused.
func parseJSONAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, money.ErrInvalidAmount
		}
	}
	return money.ParseAmount(text)
}

// APIPreview stores the edited fields in the caller's session and returns
// the derived display values.
func (h *FormHandler) APIPreview(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s := h.session(r)
	d, v := req.draft(models.NewDraft(s.Options().Now()))
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	if err := s.Update(d); err != nil {
		httpx.JSONError(w, http.StatusConflict, "busy", nil)
		return
	}
	der := form.Recompute(d)
	lang := i18n.LangFromContext(r.Context())
	summary := fmt.Sprintf(i18n.T(lang, "cash_banner"), d.Card, der.FormattedAmount)
	if d.IsInstallment {
		summary = fmt.Sprintf(i18n.T(lang, "installment_banner"), d.Card, d.InstallmentCount, der.FormattedInstallment)
	}
	httpx.JSON(w, http.StatusOK, previewResponse{
		FormattedAmount:      der.FormattedAmount,
		FormattedInstallment: der.FormattedInstallment,
		AmountInWords:        der.AmountInWords,
		Summary:              summary,
	})
}

// APICreate validates and appends one purchase without touching the
// caller's browser draft.
func (h *FormHandler) APICreate(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s := form.NewSession(h.Sessions.Options())
	d, v := req.draft(s.Draft())
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	if err := s.Update(d); err != nil {
		httpx.JSONError(w, http.StatusConflict, "busy", nil)
		return
	}

	ctx, cancel := h.submitContext(r.Context())
	defer cancel()
	row, err := s.Submit(ctx, h.Store)
	if err != nil {
		var warn *form.ValidationWarning
		if errors.As(err, &warn) {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", warn.Violations)
			return
		}
		status, code := classify(err)
		log.Printf("api submit failed: %v", err)
		httpx.JSONError(w, status, code, err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"row": row, "cells": row.Values()})
}
