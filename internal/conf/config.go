package conf

import (
	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
)

// Config is the process environment. The base endpoint is fixed at startup
// and not switchable afterwards.
type Config struct {
	APIURL       string `env:"TASKAI_API_URL" envDefault:"http://127.0.0.1:8000"`
	LogLevel     string `env:"TASKAI_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"TASKAI_LOG_FILE"`
	LogMaxSizeMB int    `env:"TASKAI_LOG_MAX_SIZE_MB" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
