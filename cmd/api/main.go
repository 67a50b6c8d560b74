package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"cc-analytics-go/internal/config"
	"cc-analytics-go/internal/generator"
	"cc-analytics-go/internal/logger"
	"cc-analytics-go/internal/server"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "cc-analytics-go").Info("starting service")

	cfg, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	log.WithField("calls", cfg.Simulation.Calls).
		WithField("agents", cfg.Simulation.Agents).
		WithField("seed", cfg.Simulation.Seed).
		Info("generating synthetic dataset")

	start := time.Now()
	ds := generator.GenerateDataset(generator.Options{
		Calls:                 cfg.Simulation.Calls,
		Agents:                cfg.Simulation.Agents,
		Seed:                  cfg.Simulation.Seed,
		SimulateInterruptions: cfg.Simulation.SimulateInterruptions,
	})
	log.WithField("total_calls", len(ds.Calls)).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("dataset ready")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      server.New(cfg, ds).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", srv.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
