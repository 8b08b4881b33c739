package main

import (
	"log"
	"net/http"

	"spinnergy/internal/api/router"
	"spinnergy/internal/cache"
	"spinnergy/internal/config"
	"spinnergy/internal/core/repository"
	"spinnergy/internal/core/service"
	"spinnergy/internal/nutrition"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to MongoDB; fall back to the in-memory store when it is
	// unreachable so the process keeps serving (degraded mode).
	var accountRepo repository.AccountRepository
	storageName := "mongodb"

	mongoConfig := config.NewMongoConfig()
	db, err := config.ConnectMongoDB(mongoConfig)
	if err != nil {
		log.Printf("MongoDB unavailable (%v), falling back to in-memory store", err)
		accountRepo = repository.NewInMemoryAccountRepository()
		storageName = "memory"
	} else {
		accountRepo = repository.NewMongoAccountRepository(db)
	}

	// Optional leaderboard cache
	cache.Initialize(cfg.RedisURL)
	defer cache.Close()

	// Initialize services
	accountService := service.NewAccountService(accountRepo, cfg.InitialSpins)
	sessionService := service.NewSessionService(accountRepo, cfg.JWTSecret, cfg.TokenTTL)
	gameService := service.NewGameService(accountRepo, cfg.WheelSegments)
	leaderboardService := service.NewLeaderboardService(accountRepo)

	nutritionClient := nutrition.NewClient(cfg.NutritionixAppID, cfg.NutritionixAppKey)

	// Initialize router
	r := router.NewRouter(
		accountService,
		sessionService,
		gameService,
		leaderboardService,
		nutritionClient,
		storageName,
	)

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Spinnergy server listening on %s (storage: %s)", addr, storageName)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
