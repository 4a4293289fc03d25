package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/repository/postgres"
	"github.com/iamasit07/4-in-a-row/engine/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/cleanup"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/console"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Postgres, optional
	var store analysis.Store
	var cleanupDone <-chan struct{}
	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Printf("[DB] Warning: %v. Analyses will not be stored.", err)
		} else {
			defer db.Close()

			log.Println("[DB] Running database migrations...")
			if err := postgres.RunMigrations(ctx, db); err != nil {
				log.Fatalf("Migration failed: %v", err)
			}

			repo := postgres.NewAnalysisRepo(db)
			store = repo

			// 1b. Background cleanup of stale analyses
			cleanupDone = cleanup.NewWorker(repo, cfg.RetentionDays, cfg.CleanupInterval).Start(ctx)
		}
	}

	// 2. Redis, optional
	if err := redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache analysis.Cache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 3. Services
	analysisService := analysis.NewService(store, cache, cfg.AnalysisCacheTTL)
	gameService := game.NewService(analysisService)

	// 4. Console game; reading stdin blocks, so a signal must not wait for it
	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx, os.Stdin, os.Stdout, gameService, cfg.HumanFirst)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Game ended: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
	}

	// stop the cleanup worker before the deferred db.Close
	stop()
	if cleanupDone != nil {
		<-cleanupDone
	}
}
