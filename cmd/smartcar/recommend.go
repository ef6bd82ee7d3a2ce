package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartcar/advisor/config"
	"github.com/smartcar/advisor/internal/domain"
	"github.com/smartcar/advisor/internal/usecase"
)

var (
	recommendBudget       float64
	recommendFuel         string
	recommendTransmission string
	recommendPurpose      string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank cars against your budget and preferences",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().Float64VarP(&recommendBudget, "budget", "b", 0, "budget in USD (required)")
	recommendCmd.Flags().StringVar(&recommendFuel, "fuel", "", "preferred fuel type (petrol/diesel/hybrid/electric)")
	recommendCmd.Flags().StringVar(&recommendTransmission, "transmission", "", "preferred transmission (manual/automatic)")
	recommendCmd.Flags().StringVar(&recommendPurpose, "purpose", "", "main purpose (city/family/sport/offroad)")
	_ = recommendCmd.MarkFlagRequired("budget")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cars, err := loadCanonical(cfg, logger)
	if err != nil {
		return err
	}

	recommender := usecase.NewRecommender(usecase.RecommenderConfig{
		BudgetSlack:        cfg.Scoring.BudgetSlack,
		MaxResults:         cfg.Scoring.MaxResults,
		DefaultRating:      cfg.Scoring.DefaultRating,
		EnableDebugLogging: cfg.Scoring.EnableDebugLogging,
	}, logger)

	pref := domain.Preference{
		Budget:       recommendBudget,
		Fuel:         recommendFuel,
		Transmission: recommendTransmission,
		Purpose:      recommendPurpose,
	}

	results, err := recommender.Recommend(context.Background(), pref, cars)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPreference) {
			return fmt.Errorf("preference rejected: %w", err)
		}
		return err
	}

	if len(results) == 0 {
		color.Yellow("No cars found for your preferences. Try adjusting your filters.")
		return nil
	}

	header := color.New(color.FgMagenta, color.Bold)
	name := color.New(color.FgGreen, color.Bold)
	score := color.New(color.FgCyan)

	header.Println("Top SmartCar Recommendations:")
	fmt.Println()
	for rank, res := range results {
		rating := res.Car.Rating
		if rating == 0 {
			rating = cfg.Scoring.DefaultRating
		}
		name.Printf("%d. %s %s\n", rank+1, res.Car.Brand, res.Car.Name)
		fmt.Printf("   %s\n", res.Explanation)
		fmt.Printf("   Price: $%.0f | Fuel: %s | Transmission: %s | Rating: %d/5\n",
			res.Car.Price, res.Car.Fuel, res.Car.Transmission, rating)
		score.Printf("   SmartCar Score: %.2f\n\n", res.Score)
	}
	return nil
}
