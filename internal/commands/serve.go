package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diewo77/cartoes/internal/config"
	"github.com/diewo77/cartoes/internal/form"
	"github.com/diewo77/cartoes/internal/server"
	"github.com/diewo77/cartoes/session"
	"github.com/diewo77/cartoes/view"
)

const (
	sweepInterval  = 10 * time.Minute
	maxSessionIdle = 12 * time.Hour
)

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the expense form web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	view.SetDev(cfg.App.Dev)

	b, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Printf("closing ledger backend: %v", err)
		}
	}()

	sessions := form.NewRegistry(formOptions(cfg))
	handler := server.New(server.Deps{
		Sessions:      sessions,
		Store:         b.Store,
		LedgerTimeout: cfg.LedgerTimeout(),
		Cookies:       session.NewCookies(cfg.App.SessionSecret),
		DB:            b.DB,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go sweepSessions(ctx, sessions)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s (backend=%s dev=%v)", cfg.Server.Port, cfg.Ledger.Backend, cfg.App.Dev)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
	return nil
}

func sweepSessions(ctx context.Context, sessions *form.Registry) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(maxSessionIdle); n > 0 {
				log.Printf("dropped %d idle form sessions", n)
			}
		}
	}
}
