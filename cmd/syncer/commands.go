package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/storage/postgres"
)

var previewStrategy string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if err := postgres.Migrate(cfg.Database.URL()); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	},
}

var syncSetCmd = &cobra.Command{
	Use:   "sync-set <set-id>",
	Short: "Sync every campaign of a campaign set",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		return a.orchestrator.SyncCampaignSet(ctx, args[0]), nil
	}),
}

var syncCampaignCmd = &cobra.Command{
	Use:   "sync-campaign <campaign-id>",
	Short: "Sync a single campaign",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		return a.orchestrator.SyncCampaign(ctx, args[0]), nil
	}),
}

var pauseCmd = &cobra.Command{
	Use:   "pause <set-id>",
	Short: "Pause every synced campaign of a set on its platform",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		return a.orchestrator.PauseCampaignSet(ctx, args[0]), nil
	}),
}

var resumeCmd = &cobra.Command{
	Use:   "resume <set-id>",
	Short: "Resume every synced campaign of a set on its platform",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		return a.orchestrator.ResumeCampaignSet(ctx, args[0]), nil
	}),
}

var previewCmd = &cobra.Command{
	Use:   "preview <set-id>",
	Short: "Report which ads would sync, fall back or be skipped",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		strategy, err := domain.ParseFallbackStrategy(previewStrategy)
		if err != nil {
			return nil, err
		}
		return a.orchestrator.PreviewCampaignSet(ctx, args[0], strategy)
	}),
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run one conflict detection pass over the configured accounts",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		return a.detector.PollAll(ctx), nil
	}),
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <campaign-id> <keep_local|accept_platform>",
	Short: "Resolve an open status conflict",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, a *app, args []string) (any, error) {
		resolution := domain.ConflictResolution(args[1])
		if err := a.detector.ResolveConflict(ctx, args[0], resolution); err != nil {
			return nil, err
		}
		return map[string]string{"campaignId": args[0], "resolution": string(resolution)}, nil
	}),
}

func init() {
	previewCmd.Flags().StringVar(&previewStrategy, "strategy", string(domain.FallbackSkip), "fallback strategy: skip, truncate or fallback")

	rootCmd.AddCommand(
		migrateCmd,
		syncSetCmd,
		syncCampaignCmd,
		pauseCmd,
		resumeCmd,
		previewCmd,
		pollCmd,
		resolveCmd,
	)
}

// withApp wires the service graph for a one-shot command and prints its
// result as JSON.
func withApp(run func(ctx context.Context, a *app, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := run(cmd.Context(), a, args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}
}
