package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/routes"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/infrastructure/config"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

// @title           Sparelab EPC API
// @version         1.0
// @description     Job card pricing and lifecycle, parts catalog, diagram hotspots and registration OCR.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Options{ServiceName: "sparelab-epc"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})
	zerolog.DefaultContextLogger = &log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("api server stopped")
	}
	log.Info().Msg("api server stopped")
}
