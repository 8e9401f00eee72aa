package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/subnetcheck/subnetcheck/internal/auth"
	appdb "github.com/subnetcheck/subnetcheck/internal/db"
	"github.com/subnetcheck/subnetcheck/internal/domain"
	apihttp "github.com/subnetcheck/subnetcheck/internal/http"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled bool
	Issuer      string
	JWKSURL     string
	Audience    string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DSN:          os.Getenv("DB_CONN"),
		Port:         os.Getenv("PORT"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		AuthEnabled:  os.Getenv("AUTH_ENABLED") == "true",
		Issuer:       os.Getenv("AUTH_ISSUER"),
		JWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		Audience:     os.Getenv("AUTH_AUDIENCE"),
	}

	if cfg.DSN == "" {
		return Config{}, fmt.Errorf("missing required environment variable: DB_CONN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	return cfg, nil
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

// Run listens on the configured port and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	return Serve(ctx, cfg, listener)
}

// Serve wires storage, auth and the HTTP API together and serves on listener
// until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := appdb.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	service := domain.NewLoggingMatcherService(
		logger,
		domain.NewMatcherService(appdb.NewSubnetSetRepository(pool)),
	)

	api := apihttp.NewAPI(logger, pool, service, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
