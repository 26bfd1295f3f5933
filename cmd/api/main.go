package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dydtjq94/lycon-engine/internal/config"
	"github.com/dydtjq94/lycon-engine/internal/database"
	lyconHttp "github.com/dydtjq94/lycon-engine/internal/http"
	calculatorHandler "github.com/dydtjq94/lycon-engine/internal/http/calculator"
	importHandler "github.com/dydtjq94/lycon-engine/internal/http/importcsv"
	instrumentHandler "github.com/dydtjq94/lycon-engine/internal/http/instrument"
	profileHandler "github.com/dydtjq94/lycon-engine/internal/http/profile"
	simulationHandler "github.com/dydtjq94/lycon-engine/internal/http/simulation"
	"github.com/dydtjq94/lycon-engine/internal/importer"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
	instrumentStore "github.com/dydtjq94/lycon-engine/internal/instrument/store"
	"github.com/dydtjq94/lycon-engine/internal/profile"
	profileStore "github.com/dydtjq94/lycon-engine/internal/profile/store"
	"github.com/dydtjq94/lycon-engine/internal/simulation"
	"github.com/dydtjq94/lycon-engine/internal/simulation/cache"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	resultCache := cache.New(cfg.Redis.Addr, cfg.Redis.TTL)
	defer resultCache.Close()

	var (
		profileService    = profile.NewService(profileStore.New(db))
		instrumentService = instrument.NewService(instrumentStore.New(db))
		simulationService = simulation.NewService(profileService, instrumentService, resultCache)
		importService     = importer.NewService()
	)

	var (
		profileH    = profileHandler.NewHandler(profileService)
		instrumentH = instrumentHandler.NewHandler(instrumentService)
		simulationH = simulationHandler.NewHandler(simulationService)
		calculatorH = calculatorHandler.NewHandler()
		importH     = importHandler.NewHandler(importService, instrumentService)
	)

	router := lyconHttp.New(
		profileH, instrumentH, simulationH, calculatorH, importH,
		cfg.Server.AllowedOrigins, cfg.Auth.Secret,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
