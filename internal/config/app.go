package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/factbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"FACTBOT_RUNTIME_PATH" envDefault:".factbot"`

	// Wikipedia endpoint; override for a mirror or another language wiki
	WikiAPIURL   string        `env:"FACTBOT_WIKI_API_URL" envDefault:"https://en.wikipedia.org/w/api.php"`
	FetchTimeout time.Duration `env:"FACTBOT_FETCH_TIMEOUT" envDefault:"15s"`

	// Transport Flags
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableMCP      bool `env:"ENABLE_MCP" envDefault:"false"`

	HistoryLimit int `env:"FACTBOT_HISTORY_LIMIT" envDefault:"20"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "factbot.db")
}
