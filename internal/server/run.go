package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/isparth/Distributed-Systems/items-api/internal/httpapi"
	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
)

// Config holds the listener settings for the item service.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:              ":8000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Run seeds the store, wires the router and serves on cfg.Addr until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	store := kv.NewSeededStore()
	handler := httpapi.NewRouter(store)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	logging.Infof("serving %d items on %s", store.Len(), ln.Addr())

	return Serve(ctx, ln, handler, cfg)
}

// Serve serves handler on ln and shuts down gracefully once ctx is cancelled.
// It takes ownership of ln.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg Config) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ErrorLog:          logging.Logger(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Infof("shutting down...")
		shutdownCtx := context.Background()
		if cfg.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, cfg.ShutdownTimeout)
			defer cancel()
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Errorf("shutdown: %v", err)
			return err
		}
		return nil
	}
}
