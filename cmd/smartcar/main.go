package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartcar/advisor/config"
	"github.com/smartcar/advisor/internal/domain"
	"github.com/smartcar/advisor/internal/infrastructure/dataset"
	"github.com/smartcar/advisor/internal/infrastructure/storage"
	"github.com/smartcar/advisor/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "smartcar",
	Short: "SmartCar Advisor - car dataset cleaning and recommendations",
	Long: `SmartCar Advisor normalizes a free-text automotive specification table
into a canonical record set and ranks recommendations against a user's
budget, fuel, transmission, and purpose preferences.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the application logger from config.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Log.Format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		zl = zerolog.New(os.Stderr)
	}

	return zl.Level(level).With().Timestamp().Str("service", "smartcar-advisor").Logger()
}

// loadCanonical loads the canonical record set from the configured backend.
// CSV re-ingestion goes back through the canonicalizer, which is idempotent
// on already-canonical rows.
func loadCanonical(cfg *config.Config, logger zerolog.Logger) ([]domain.CarRecord, error) {
	if cfg.Storage.Type == "sqlite" {
		store, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadAll()
	}

	reader := dataset.NewReader(logger)
	raw, err := reader.Read(cfg.Dataset.OutputPath)
	if err != nil {
		return nil, err
	}

	canonicalizer := usecase.NewCanonicalizer(usecase.CanonicalizerConfig{
		InferenceSeed: cfg.Inference.Seed,
	}, logger)
	cars, _ := canonicalizer.Canonicalize(raw, nil)
	return cars, nil
}
