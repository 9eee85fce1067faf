package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gsearch/internal/cli"
	"github.com/pdrpinto/gsearch/internal/logging"
	"github.com/pdrpinto/gsearch/metrics"
)

var rootCmd = &cobra.Command{
	Use:           "npuzzle",
	Short:         "Solve sliding-tile puzzles with A* search",
	Long:          `npuzzle solves N-puzzle boards with uniform cost search or A* using the misplaced tile or Manhattan distance heuristic.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address and wait for a signal after the command")
}

// loggerFromFlags builds the logger selected by the persistent flags.
// fallback is used when --log-level was not given explicitly.
func loggerFromFlags(cmd *cobra.Command, fallback string) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	if !cmd.Flags().Changed("log-level") && fallback != "" {
		name = fallback
	}
	level, ok := logging.ParseLevel(name)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", name)
	}
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	return logging.New(level, jsonLog), nil
}

// metricsFromFlags returns a collector on a private registry when
// --metrics-addr is set, and nil otherwise.
func metricsFromFlags(cmd *cobra.Command) (*metrics.Collector, *prometheus.Registry, error) {
	addr, _ := cmd.Flags().GetString("metrics-addr")
	if addr == "" {
		return nil, nil, nil
	}
	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return nil, nil, err
	}
	return collector, reg, nil
}

// serveMetricsUntilDone keeps the metrics endpoint up until the command's
// context is cancelled, so a scraper can read the final values.
func serveMetricsUntilDone(cmd *cobra.Command, reg *prometheus.Registry, logger *slog.Logger) error {
	if reg == nil {
		return nil
	}
	addr, _ := cmd.Flags().GetString("metrics-addr")
	return cli.ServeMetrics(cmd.Context(), addr, reg, logger)
}
