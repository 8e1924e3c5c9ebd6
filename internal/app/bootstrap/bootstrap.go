package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	account "inkwell/contexts/identity-access/account-service"
	bcryptadapter "inkwell/contexts/identity-access/account-service/adapters/bcrypt"
	accountpostgres "inkwell/contexts/identity-access/account-service/adapters/postgres"
	blog "inkwell/contexts/publishing/blog-service"
	blogpostgres "inkwell/contexts/publishing/blog-service/adapters/postgres"
	comment "inkwell/contexts/publishing/comment-service"
	commentpostgres "inkwell/contexts/publishing/comment-service/adapters/postgres"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/db"
	"inkwell/internal/platform/httpserver"
	"inkwell/internal/platform/token"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL, nil)

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	blogRepo := blogpostgres.NewRepository(pg.DB, logger)
	commentRepo := commentpostgres.NewRepository(pg.DB, logger)
	for _, migrate := range []func() error{
		accountRepo.AutoMigrate,
		blogRepo.AutoMigrate,
		commentRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	accountModule := account.NewModule(account.Dependencies{
		Repository:  accountRepo,
		Passwords:   bcryptadapter.Hasher{Cost: cfg.BcryptCost},
		Tokens:      tokens,
		Clock:       accountpostgres.SystemClock{},
		IDGenerator: accountpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	blogModule := blog.NewModule(blog.Dependencies{
		Repository:  blogRepo,
		Accounts:    accountRepo,
		Clock:       blogpostgres.SystemClock{},
		IDGenerator: blogpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	commentModule := comment.NewModule(comment.Dependencies{
		Repository:  commentRepo,
		Posts:       blogRepo,
		Accounts:    accountRepo,
		Clock:       commentpostgres.SystemClock{},
		IDGenerator: commentpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(
		accountModule,
		blogModule,
		commentModule,
		tokens,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
