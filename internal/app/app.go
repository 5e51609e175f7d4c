package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nebari-dev/nebari-software-pack-template/internal/config"
)

type App struct {
	httpServer *http.Server
}

func New(cfg config.Config) (*App, error) {
	router, err := setupHTTP(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: setup http: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		httpServer: server,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run blocks serving HTTP. It returns nil after Shutdown.
func (a *App) Run() error {
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
