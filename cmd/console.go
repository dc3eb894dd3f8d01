package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"library/internal/admin"
	"library/internal/config"
	"library/internal/console"
	"library/internal/lending"
	"library/internal/ops"
	"library/pkg/logger"
	"library/pkg/storage/memory"
)

// setupOpsServer starts the metrics/pprof server and returns a function that
// shuts it down.
func setupOpsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server := ops.NewServer(ops.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

func consoleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Starts the interactive library console",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			lendingOpts, err := lending.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid lending configuration", zap.Error(err))
			}

			strg := memory.New()
			defer func() {
				if err := strg.Close(); err != nil {
					logger.Warn(ctx, "could not close storage", zap.Error(err))
				}
			}()

			if cfg.Ops.Enabled {
				stopOps := setupOpsServer(ctx, cfg)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()

					stopOps(shutdownCtx)
				}()
			}

			shell := console.New(console.Deps{
				Admin:  admin.New(strg),
				Lender: lending.New(strg, clock.New(), lendingOpts),
			}, os.Stdin, os.Stdout)

			if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error(ctx, "console exited with error", zap.Error(err))
			}
		},
	}

	return cmd
}
