package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	apphttp "budgetbook/internal/http"
)

type serveCmd struct {
	Addr string `default:"127.0.0.1:8081" env:"BUDGETBOOK_HTTP_ADDR" help:"Listen address for the JSON API."`
}

func (c *serveCmd) Run(rc *runContext) error {
	srv := apphttp.NewServer(c.Addr, rc.app, rc.logger.Slog())

	errCh := make(chan error, 1)
	go func() {
		rc.logger.Info("Starting HTTP server", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-rc.ctx.Done():
		rc.logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
