package app

import (
	"os"

	"homecare-scheduler/internal/config"
	"homecare-scheduler/internal/logx"
)

// NewLogger builds the configured backend writing JSON to stdout.
func NewLogger(cfg *config.Config, serviceName string) (logx.Logger, error) {
	if cfg.Log.Backend == "zap" {
		return logx.NewZap(cfg.Log.Level, serviceName)
	}
	return logx.NewSlog(os.Stdout, cfg.Log.Level, serviceName), nil
}
