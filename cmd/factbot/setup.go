package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/providers/wiki"
	"github.com/sandevgo/factbot/internal/service/dispatch"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/sandevgo/factbot/internal/transport/cli"
	"github.com/sandevgo/factbot/internal/transport/mcpsrv"
	"github.com/sandevgo/factbot/internal/transport/telegram"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/sandevgo/factbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	if err := initEnv(ctx, appCfg.RuntimePath); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 2. Storage (query history)
	db, historyRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Dispatcher over the Wikipedia-backed extractor
	dispatcher := newDispatcher(appCfg)

	// 4. Transports
	transports, err := initTransports(ctx, appCfg, dispatcher, historyRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func newDispatcher(cfg *config.AppConfig) *dispatch.Dispatcher {
	source := wiki.NewClient(cfg)
	extractor := facts.New(source)
	return dispatch.New(dispatch.DefaultTable(extractor))
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.HistoryRepo, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewHistoryRepo(db), nil
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	dispatcher *dispatch.Dispatcher,
	history core.HistoryRepo,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableCLI {
		repl, err := cli.NewReadLine(dispatcher, history, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, repl)
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, dispatcher, history)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableMCP {
		services = append(services, mcpsrv.New(dispatcher))
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
