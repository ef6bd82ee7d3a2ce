package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcar/advisor/config"
	"github.com/smartcar/advisor/internal/infrastructure/prolog"
)

var exportFactsPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the canonical car table as Prolog facts",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFactsPath, "facts", "f", "", "fact file path (overrides config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cars, err := loadCanonical(cfg, logger)
	if err != nil {
		return err
	}

	factsPath := cfg.Export.FactsPath
	if exportFactsPath != "" {
		factsPath = exportFactsPath
	}

	exporter := prolog.NewExporter(logger)
	if err := exporter.Export(factsPath, cars); err != nil {
		return err
	}

	fmt.Printf("Exported %d facts -> %s\n", len(cars), factsPath)
	return nil
}
