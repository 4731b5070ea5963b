// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	submissionservice "agora/contexts/community-feed/submission-service"
	feedpostgres "agora/contexts/community-feed/submission-service/adapters/postgres"
	votingservice "agora/contexts/community-feed/voting-service"
	votingpostgres "agora/contexts/community-feed/voting-service/adapters/postgres"
	"agora/internal/platform/config"
	"agora/internal/platform/db"
	"agora/internal/platform/httpserver"
)

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

	if cfg.InMemory {
		feed := submissionservice.NewInMemoryModule(logger)
		voting := votingservice.NewInMemoryModule(nil, logger)
		return &APIApp{
			server: httpserver.New(feed, voting, logger, ":"+cfg.HTTPPort),
			logger: logger,
		}, nil
	}

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required unless FEED_IN_MEMORY is set")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := feedpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if err := votingpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}

	feedRepo := feedpostgres.NewRepository(pg.DB, logger)
	feed := submissionservice.NewModule(submissionservice.Dependencies{
		Channels: feedRepo,
		Posts:    feedRepo,
		Clock:    feedpostgres.SystemClock{},
		IDGen:    feedpostgres.UUIDGenerator{},
		Logger:   logger,
	})

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	voting := votingservice.NewModule(votingservice.Dependencies{
		Votes:  votingRepo,
		Clock:  votingpostgres.SystemClock{},
		Logger: logger,
	})

	return &APIApp{
		server:   httpserver.New(feed, voting, logger, ":"+cfg.HTTPPort),
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	return a.postgres.Close()
}
