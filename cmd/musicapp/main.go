package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-music-go/config"
	"github.com/Conceptual-Machines/magda-music-go/demo"
	"github.com/Conceptual-Machines/magda-music-go/logger"
	"github.com/Conceptual-Machines/magda-music-go/metrics"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "musicapp",
		Short:         "Render notes, chords, scales and instruments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (env vars override it)")

	return cmd
}

func run(ctx context.Context, configPath string) error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "⚠️  Warning: Could not load .env file: %v\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	lggr, err := (&logger.Config{Level: level, JSON: cfg.JSONLogs()}).New()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	if cfg.Sentry.Enabled() {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			EnableTracing:    true,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		})
		if err != nil {
			return fmt.Errorf("failed to init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		lggr.Infow("Sentry enabled", "environment", cfg.Sentry.Environment)
	}

	m := metrics.NewSentryMetrics(cfg.Sentry.Enabled())

	if err := demo.NewRunner(os.Stdout, lggr, m).Run(ctx); err != nil {
		m.RecordFailure(ctx, err)
		return err
	}
	return nil
}
