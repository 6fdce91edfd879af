package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"talentboard/internal/backend"
	"talentboard/internal/config"
	"talentboard/internal/web"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	client, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		log.Fatalf("init backend client: %v", err)
	}
	logger.Info("backend client ready", slog.String("base_url", cfg.Backend.BaseURL))

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	flashes := web.NewRedisFlashStore(redisClient, cfg.Redis.FlashTTL)

	router := web.NewRouter(logger)
	web.RegisterRoutes(router, client, flashes, logger)

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("dashboard listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start dashboard server: %v", err)
	}
}
