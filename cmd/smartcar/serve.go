package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcar/advisor/config"
	httpDelivery "github.com/smartcar/advisor/internal/delivery/http"
	"github.com/smartcar/advisor/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation API over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cars, err := loadCanonical(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info().
		Int("cars", len(cars)).
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("starting smartcar-advisor API")

	recommender := usecase.NewRecommender(usecase.RecommenderConfig{
		BudgetSlack:        cfg.Scoring.BudgetSlack,
		MaxResults:         cfg.Scoring.MaxResults,
		DefaultRating:      cfg.Scoring.DefaultRating,
		EnableDebugLogging: cfg.Scoring.EnableDebugLogging,
	}, logger)

	handler := httpDelivery.NewHandler(recommender, cars)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
