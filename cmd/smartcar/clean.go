package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/smartcar/advisor/config"
	"github.com/smartcar/advisor/internal/infrastructure/dataset"
	"github.com/smartcar/advisor/internal/infrastructure/storage"
	"github.com/smartcar/advisor/internal/usecase"
)

var (
	cleanInputPath  string
	cleanOutputPath string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize the raw dataset into the canonical car table",
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInputPath, "input", "i", "", "raw dataset path (overrides config)")
	cleanCmd.Flags().StringVarP(&cleanOutputPath, "output", "o", "", "canonical table path (overrides config)")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	inputPath := cfg.Dataset.InputPath
	if cleanInputPath != "" {
		inputPath = cleanInputPath
	}
	outputPath := cfg.Dataset.OutputPath
	if cleanOutputPath != "" {
		outputPath = cleanOutputPath
	}

	reader := dataset.NewReader(logger)
	raw, err := reader.Read(inputPath)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(raw),
		progressbar.OptionSetDescription("cleaning records"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	canonicalizer := usecase.NewCanonicalizer(usecase.CanonicalizerConfig{
		InferenceSeed:      cfg.Inference.Seed,
		EnableDebugLogging: cfg.Scoring.EnableDebugLogging,
	}, logger)
	cars, stats := canonicalizer.Canonicalize(raw, func() {
		_ = bar.Add(1)
	})

	writer, err := dataset.NewWriter(outputPath)
	if err != nil {
		return err
	}
	if err := writer.Write(cars); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Storage.Type == "sqlite" {
		store, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Write(cars); err != nil {
			return err
		}
	}

	fmt.Printf("Cleaned %d of %d records (%d duplicates, %d rejected) -> %s\n",
		stats.Cleaned, stats.Total, stats.Duplicates, stats.Rejected, outputPath)
	return nil
}
