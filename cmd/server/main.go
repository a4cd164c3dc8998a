package main

import (
	"fmt"
	"log"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/api"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/config"
	"github.com/yourname/befree/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewZapLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	users, logs, milestones := storage.NewFileRepositories(cfg.DBFile, logger)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	if cfg.DemoSeed {
		demo, err := users.SeedDemo()
		if err != nil {
			logger.Fatalf("failed to seed demo user: %v", err)
		}
		logger.Infof("demo user ready: %s", demo.Email)
	}

	app := api.NewApp(cfg, logger, users, logs, milestones, tokens)
	router := api.NewRouter(app)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Infof("BeFree API listening on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
