package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"scientist-twin/internal/config"
	"scientist-twin/internal/db"
	apihttp "scientist-twin/internal/http"
	"scientist-twin/internal/llm"
	"scientist-twin/internal/repository"
	"scientist-twin/internal/service"

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

	var scientistRepo repository.ScientistRepository
	var feedbackRepo repository.FeedbackRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		scientistRepo = repository.NewPgScientistRepository(pool)
		feedbackRepo = repository.NewPgFeedbackRepository(pool)
	} else {
		logger.Info("no database configured, loading scientists from file",
			zap.String("path", cfg.ScientistDBPath))
		scientistRepo = repository.NewFileScientistRepository(cfg.ScientistDBPath)
	}

	scientists, err := scientistRepo.ListAll(ctx)
	if err != nil {
		logger.Fatal("load scientists", zap.Error(err))
	}
	logger.Info("scientist pool loaded", zap.Int("count", len(scientists)))

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, zap.NewStdLog(logger))
	} else {
		logger.Warn("llm api key not configured, narratives use templates only")
	}

	narrator := service.NewNarrativeBuilder(llmClient, time.Duration(cfg.LLMTimeoutSecs)*time.Second)
	engine := service.NewMatchingEngine(scientists, narrator)

	sessionStore := service.NewMemoryQuizSessionStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory sessions", zap.Error(err))
		} else {
			sessionStore = service.NewRedisQuizSessionStore(redisClient)
		}
		cancel()
	}

	if cfg.SessionSecret == "" {
		logger.Warn("session secret not configured")
	}
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	tokenSvc := service.NewTokenService(cfg.SessionSecret, sessionTTL)
	quizSvc := service.NewQuizService(sessionStore, sessionTTL)

	var analyticsSvc *service.AnalyticsService
	if feedbackRepo != nil {
		analyticsSvc = service.NewAnalyticsService(feedbackRepo, scientists)
	}

	quizHandler := apihttp.NewQuizHandler(logger, quizSvc, tokenSvc)
	matchHandler := apihttp.NewMatchHandler(logger, quizSvc, engine, feedbackRepo)
	analyticsHandler := apihttp.NewAnalyticsHandler(logger, analyticsSvc)
	router := apihttp.NewRouter(logger, tokenSvc, quizHandler, matchHandler, analyticsHandler)

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
