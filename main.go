package main

import (
	"log"

	"pool-club/cmd"
	"pool-club/internal/data/catalog"
	"pool-club/internal/data/repository"
	"pool-club/internal/data/repository/memory"
	"pool-club/internal/wire"
	"pool-club/pkg/cache"
	"pool-club/pkg/database"
	"pool-club/pkg/utils"

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
		zap.String("store", config.Store.Driver),
	)

	// Initialize repositories against the configured store
	var repos *repository.Repository
	if config.Store.Driver == "postgres" {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	} else {
		logger.Info("Using in-memory store; data is lost on restart")
		repos = memory.NewRepository(memory.NewStore())
	}

	// Load the content catalog (prices, plans, classes, events, site info)
	cat := catalog.Load(config.App.DataDir, logger)

	// Rankings cache is optional; without Redis every request hits upstream
	var rankingsCache *cache.Cache
	if config.Redis.Addr != "" {
		rankingsCache, err = cache.NewCache(config.Redis.Addr, config.Redis.Password, config.Redis.DB, logger)
		if err != nil {
			logger.Warn("Failed to connect to redis, rankings cache disabled", zap.Error(err))
			rankingsCache = nil
		} else {
			defer rankingsCache.Close()
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, cat, rankingsCache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
