// Package main provides the HTTP server for the Saral Seva backend.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"saral-seva-backend/internal/config"
	"saral-seva-backend/internal/handlers"
	"saral-seva-backend/internal/services/database"
	"saral-seva-backend/internal/services/qa"
	"saral-seva-backend/internal/services/recommend"
	"saral-seva-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL()); err != nil {
		logger.Fatal("could not run migrations", zap.Error(err))
	}

	schemeRepo := database.NewSchemeRepository(db)
	recommender := recommend.NewService(schemeRepo)

	cache := qa.NewSchemeCache(schemeRepo,
		time.Duration(cfg.SchemeCacheTTLSeconds)*time.Second,
		cfg.QAWorkingSetSize,
	)
	qaService := qa.NewService(cache)

	// Warm the Q&A working set; a cold cache still loads lazily on first ask.
	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cache.Refresh(warmCtx); err != nil {
		logger.Warn("could not warm scheme cache", zap.Error(err))
	}
	cancel()

	server := handlers.NewServer(db, cfg, recommender, qaService)

	mux := http.NewServeMux()
	server.Routes(mux)

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	logger.Info("Saral Seva API server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
	)

	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
