// Package session issues the signed browser cookie that ties a visitor to
// their form draft. It carries no identity.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const (
	CookieName = "cartoes_session"
	idCtxKey   = ctxKey("sessionID")
	maxAge     = 30 * 24 * time.Hour
)

// Cookies signs and verifies session ids with an HMAC secret.
type Cookies struct {
	secret []byte
}

func NewCookies(secret string) *Cookies {
	if secret == "" {
		secret = "devsessionsecret"
	}
	return &Cookies{secret: []byte(secret)}
}

func (c *Cookies) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Issue sets a cookie with a fresh random id and returns the id.
func (c *Cookies) Issue(w http.ResponseWriter) string {
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id + "." + c.sign(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(maxAge),
	})
	return id
}

// Parse validates the cookie and returns its id.
func (c *Cookies) Parse(r *http.Request) (string, bool) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", false
	}
	id, sig, ok := strings.Cut(ck.Value, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(id))) {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// Middleware makes sure every request carries a session id in its context,
// issuing a cookie when the browser has none or a tampered one.
func (c *Cookies) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.Parse(r)
		if !ok {
			id = c.Issue(w)
		}
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID stores the session id in context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idCtxKey, id)
}

// IDFromContext extracts the session id.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(idCtxKey).(string)
	return id, ok && id != ""
}
