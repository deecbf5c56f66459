// Package app wires the authd server runtime: config, logging, stores, and HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"authd/internal/auth/api"
	"authd/internal/auth/session"
	"authd/internal/identity"
)

// App is the authd server runtime. It owns the long-lived store instances and
// the HTTP server wiring; both stores live for the process lifetime and are
// shared by reference across request handlers.
type App struct {
	cfg Config
	log *slog.Logger

	auth *api.Handler
	rdb  *redis.Client
}

// New constructs a fully wired App instance from config and logger.
//
// A missing signing secret is a fatal construction error: the process must
// not come up without one.
func New(cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel)
	}

	sessCfg, err := session.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("app: session config (is JWT_SECRET set?): %w", err)
	}

	users := identity.NewMemoryUserStore()

	var banned session.BannedTokenStore
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		banned = session.NewRedisBannedTokenStore(rdb, "authd", sessCfg.TTL)
		log.Info("revocation.backend", "kind", "redis", "addr", cfg.RedisAddr)
	} else {
		banned = session.NewMemoryBannedTokenStore()
		log.Info("revocation.backend", "kind", "memory")
	}

	sessions, err := session.NewService(sessCfg, banned)
	if err != nil {
		return nil, err
	}

	auth, err := api.NewHandler(log, api.LoadConfigFromEnv(), users, sessions)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:  cfg,
		log:  log,
		auth: auth,
		rdb:  rdb,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal server error.
func (a *App) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	registerHTTP(mux, a.auth)

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           WithRequestLogging(mux, a.log),
		ReadHeaderTimeout: nonZeroDuration(a.cfg.ReadHeaderTimeout, 5*time.Second),
		ReadTimeout:       nonZeroDuration(a.cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      nonZeroDuration(a.cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       nonZeroDuration(a.cfg.IdleTimeout, 60*time.Second),
		MaxHeaderBytes:    nonZeroInt(a.cfg.MaxHeaderBytes, 1<<20),
	}

	a.log.Info("server.start", "addr", a.cfg.HTTPAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("server.stop", "reason", "context_done")
	case err := <-errCh:
		a.log.Error("server.fail", "err", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("server.shutdown.fail", "err", err)
		return err
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Error("redis.close.fail", "err", err)
		}
	}

	a.log.Info("server.stopped")
	return nil
}

func nonZeroDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

func nonZeroInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
