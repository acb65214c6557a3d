package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	db "github.com/inkpad/gofiber-notes-api/infrastructure/persistence/database"
	"github.com/inkpad/gofiber-notes-api/pkg/app"
	"github.com/inkpad/gofiber-notes-api/pkg/configs"
	"github.com/inkpad/gofiber-notes-api/pkg/di"
	"github.com/inkpad/gofiber-notes-api/pkg/logger"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file, using existing environment")
	}

	database, err := configs.NewDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.SetupDatabase(database.DB); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	redisConfig := configs.LoadRedisConfig()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	log.Info().Msg("connected to redis")

	container, err := di.NewContainer(database.DB, redisClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("container setup failed")
	}

	go container.ViewCountFlusher.Start(ctx)
	log.Info().Msg("view count flusher started")

	fiberApp := app.SetupApp(container)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		log.Info().Str("port", port).Msg("server listening")
		if err := fiberApp.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-c
	log.Info().Msg("shutting down")
	cancel()

	if err := fiberApp.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	if err := database.Close(); err != nil {
		log.Fatal().Err(err).Msg("database close failed")
	}

	log.Info().Msg("server stopped")
}
