package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/isparth/Distributed-Systems/items-api/internal/loadtest"
	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
	"github.com/isparth/Distributed-Systems/items-api/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "itemserver",
		Short:         "In-memory item service and its load test",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cfg := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the item API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	cmd.Flags().DurationVar(&cfg.ReadHeaderTimeout, "read-header-timeout", cfg.ReadHeaderTimeout, "time allowed to read request headers")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for in-flight requests on shutdown")
	return cmd
}

func newBenchCmd() *cobra.Command {
	cfg := loadtest.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Load test a running item API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadtest.Run(cmd.Context(), &http.Client{}, cfg)
			if err != nil {
				return err
			}
			if err := report.WriteText(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !report.Passed() {
				return fmt.Errorf("load test against %s failed", cfg.BaseURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the item API")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of request batches")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "batches in flight at once")
	cmd.Flags().DurationVar(&cfg.Threshold, "threshold", cfg.Threshold, "p95 latency limit for read scenarios")
	cmd.Flags().DurationVar(&cfg.Pause, "pause", cfg.Pause, "sleep after each batch")
	return cmd
}
