package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirphl/ezpz-ti/internal/config"
	"github.com/amirphl/ezpz-ti/internal/metrics"
	"github.com/amirphl/ezpz-ti/internal/utils"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg      config.Config
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{recorder: metrics.New()}

	root := &cobra.Command{
		Use:   "ezpz-ti",
		Short: "Technical indicators over CSV tables",
		Long: `ezpz-ti resolves columns of a CSV table, runs one technical indicator
entry point on them and writes the result as a table.

Example usage:
  ezpz-ti list
  ezpz-ti run sma_bulk --input prices.csv --param period=20
  ezpz-ti run true_range_bulk --input bars.csv --col high=h --col low=l --col close=c
  ezpz-ti format ./scripts
  ezpz-ti db import --table postings --input postings.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := utils.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cfg.MetricsFile == "" {
				return nil
			}
			if err := a.recorder.WriteTextfile(a.cfg.MetricsFile); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newListCmd(), newRunCmd(a), newFormatCmd(a), newDBCmd(a))
	return root
}

func main() {
	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
