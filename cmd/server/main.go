package main

import (
	"fmt"
	"os"

	"userhub/internal/api"
	"userhub/internal/config"
	"userhub/internal/database"
	"userhub/internal/database/repository"
	"userhub/internal/database/service"
	"userhub/internal/handler"
	"userhub/internal/logger"
	"userhub/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Server] Starting userhub...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Connect to Redis
	redisClient, err := database.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// 5. Initialize Repositories
	userRepo := repository.NewUserRepository(db)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, redisClient, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	r := api.SetupRouter(cfg, authHandler, userHandler, authMiddleware)

	// 8. Start HTTP Server
	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	appLogger.Info("🌍 [Server] HTTP Server running...", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
