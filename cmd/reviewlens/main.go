package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/cli"
	"github.com/spacesedan/reviewlens/internal/logging"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Failed to load config",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)

	if err := cli.Execute(cfg, version); err != nil {
		os.Exit(1)
	}
}
