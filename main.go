// main.go
package main

import (
	"log"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/cmd"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/wire"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the in-memory repositories
	repos := repository.NewRepository(logger)

	// Wire all dependencies
	app := wire.Wiring(repos, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
