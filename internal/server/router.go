package server

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/cartoes/httpx"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/handlers"
	"github.com/diewo77/cartoes/internal/ledger"
	"github.com/diewo77/cartoes/internal/middleware"
	"github.com/diewo77/cartoes/session"
	"github.com/diewo77/cartoes/view"
)

// Deps are the collaborators the router wires into the handlers.
type Deps struct {
	Sessions      *form.Registry
	Store         ledger.Store
	LedgerTimeout time.Duration
	Cookies       *session.Cookies
	// DB is the optional local ledger; when set /healthz pings it.
	DB        *gorm.DB
	StaticDir string
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()
	view.SetLangResolver(middleware.LangFrom)

	//revive:disable:unused-parameter
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.DB != nil {
			if err := d.DB.WithContext(r.Context()).Exec("SELECT 1").Error; err != nil {
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": d.Sessions.Len()})
	})
	//revive:enable:unused-parameter

	staticDir := d.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	handlers.NewFormHandler(d.Sessions, d.Store, d.LedgerTimeout).Register(mux)

	cookies := d.Cookies
	if cookies == nil {
		cookies = session.NewCookies("")
	}
	return middleware.Logging(middleware.Recover(middleware.Prefs(cookies.Middleware(mux))))
}
