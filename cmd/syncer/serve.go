package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"campaign_syncer/internal/ops"
	"campaign_syncer/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conflict poller and the ops server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		a.logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	opsServer := ops.NewServer(a.cfg.Metrics.Addr, a.metrics, a.breakers, a.logger)
	serverErr := make(chan error, 1)
	go func() {
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			cancel()
		}
	}()

	a.logger.Info("starting campaign syncer",
		"accounts", len(a.cfg.Conflict.Accounts),
		"interval", a.cfg.Conflict.Interval,
		"ops_addr", a.cfg.Metrics.Addr,
	)

	sched := scheduler.NewScheduler(a.detector, a.cfg.Conflict.Interval, a.cfg.Conflict.RunTimeout, a.logger)
	schedErr := sched.Start(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("failed to shut down ops server", "error", err)
	}

	select {
	case err := <-serverErr:
		return fmt.Errorf("ops server: %w", err)
	default:
	}
	if schedErr != nil && !errors.Is(schedErr, context.Canceled) {
		return fmt.Errorf("scheduler: %w", schedErr)
	}
	return nil
}
