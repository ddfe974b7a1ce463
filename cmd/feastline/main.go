package main

import (
	"fmt"
	"os"

	"github.com/feastline/feastline/dataset"
	"github.com/feastline/feastline/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ============================================================================
// FEASTLINE CLI — batch ETL + ten-question report
// ============================================================================
// Two entry points, each a single hardcoded sequence over files in the
// working directory. No flags, no environment configuration; an optional
// feastline.yaml overrides source paths.
// ============================================================================

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "feastline",
	Short: "Build the food-delivery dataset and answer the ten-question report",
	Long: `feastline ingests orders.csv, users.json, and a *.sql restaurant catalog
from the working directory, left-joins them into one denormalized table,
persists it to ` + dataset.OutputFile + `, and prints ten aggregate answers.

Subcommands:
  run     full pipeline: load, join, persist, report
  report  reload the persisted dataset and report only`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		// One id correlates log lines of both stages across re-runs.
		logger = l.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load the three sources, join, persist the dataset, and report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := dataset.LoadLocator(".")
		if err != nil {
			return err
		}

		table, err := dataset.Build(loc, dataset.OutputFile, logger)
		if err != nil {
			return err
		}

		view := report.BindRows(table.Rows)
		report.Render(os.Stdout, report.Run(view, report.WithLogger(logger)))
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reload " + dataset.OutputFile + " and report without re-running the join",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.ReadTable(dataset.OutputFile)
		if err != nil {
			return err
		}
		logger.Info("reloaded denormalized dataset",
			zap.String("path", dataset.OutputFile),
			zap.Int("rows", len(table.Rows)))

		view := report.BindRows(table.Rows)
		report.Render(os.Stdout, report.Run(view, report.WithLogger(logger)))
		return nil
	},
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
