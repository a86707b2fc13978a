// Package app wires configuration, storage, use cases and the HTTP server
// together and runs the server until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/bookmarks/internal/adapter/repository/postgres"
	"github.com/vadimbarashkov/bookmarks/internal/adapter/token"
	"github.com/vadimbarashkov/bookmarks/internal/config"
	"github.com/vadimbarashkov/bookmarks/internal/usecase"
	"github.com/vadimbarashkov/bookmarks/pkg/password"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/bookmarks/internal/adapter/delivery/http"
	pg "github.com/vadimbarashkov/bookmarks/pkg/postgres"
)

func newLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("bookmarks", httplog.Options{
		LogLevel:       cfg.SlogLevel(),
		JSON:           cfg.Env == config.EnvProd,
		Concise:        cfg.Env == config.EnvDev,
		RequestHeaders: cfg.Env != config.EnvProd,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// newHandler builds the HTTP handler on top of an open database.
func newHandler(cfg *config.Config, logger *httplog.Logger, db *sqlx.DB) http.Handler {
	validate := validator.New()
	tokens := token.NewManager(cfg.Tokens.Secret, cfg.Tokens.AccessTTL, cfg.Tokens.RefreshTTL)

	authUseCase := usecase.NewAuthUseCase(
		logger.Logger,
		postgres.NewUserRepository(db),
		password.New(cfg.Tokens.BcryptCost),
		tokens,
		validate,
	)
	bookmarkUseCase := usecase.NewBookmarkUseCase(
		logger.Logger,
		cfg.ShortURLLength,
		postgres.NewBookmarkRepository(db),
		validate,
	)

	return delivery.NewRouter(logger, tokens, authUseCase, bookmarkUseCase)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := newLogger(cfg)

	db, err := pg.New(
		ctx,
		cfg.Postgres.DSN(),
		pg.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		pg.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		pg.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		pg.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := pg.RunMigrations(cfg.MigrationsURL, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        newHandler(cfg, logger, db),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
