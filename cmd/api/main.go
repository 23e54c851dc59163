package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"team-fit/internal/config"
	"team-fit/internal/db"
	"team-fit/internal/genome"
	apihttp "team-fit/internal/http"
	"team-fit/internal/repository"
	"team-fit/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	cacheTTL := time.Duration(cfg.ProfileCacheTTL) * time.Minute
	cache := service.NewMemoryProfileCache(cacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisProfileCache(redisClient, cacheTTL)
		}
		cancel()
	}

	genomeClient := genome.NewHTTPClient(cfg.BioBaseURL, cfg.SearchBaseURL, logger)
	teamRepo := repository.NewPgTeamRepository(pool)
	analysisSvc := service.NewAnalysisService(genomeClient, cache, logger)

	analysisHandler := apihttp.NewAnalysisHandler(logger, analysisSvc)
	peopleHandler := apihttp.NewPeopleHandler(logger, genomeClient)
	teamHandler := apihttp.NewTeamHandler(logger, teamRepo, analysisSvc)
	router := apihttp.NewRouter(logger, analysisHandler, peopleHandler, teamHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
