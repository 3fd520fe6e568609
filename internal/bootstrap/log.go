package bootstrap

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"

	"github.com/taskai-app/taskai-go/internal/conf"
	"github.com/taskai-app/taskai-go/pkg/utils"
)

// InitLog configures the shared logger from the environment. An unknown
// level falls back to info rather than failing startup.
func InitLog(cfg *conf.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	utils.Log.SetLevel(level)
	utils.Log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	out := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: 3,
		})
	}
	utils.Log.SetOutput(out)
}
