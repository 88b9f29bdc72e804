// Command upnotif watches a list of URLs and posts to Slack when any of them
// goes up or down.
//
// Configuration is read from the environment only:
//
//	UPNOTIF_URLS              comma-separated URLs to monitor (required)
//	UPNOTIF_SLACK_WEBHOOK     Slack incoming webhook, or "test" to log instead (required)
//	UPNOTIF_INTERVAL_SECONDS  seconds between checks (default 60)
//	UPNOTIF_LOG_DIR           also write logs to a rolling file in this directory
//	UPNOTIF_LOG_LEVEL         debug, info, warn or error (default info); debug
//	                          adds per-probe detail and DNS diagnosis of failures
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/upnotif/internal/config"
	"github.com/hamed0406/upnotif/internal/logging"
	"github.com/hamed0406/upnotif/internal/notify"
	"github.com/hamed0406/upnotif/internal/probe"
	"github.com/hamed0406/upnotif/internal/scheduler"
)

var rootCmd = &cobra.Command{
	Use:          "upnotif",
	Short:        "Notify Slack when monitored URLs change status",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, cfgErr := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		// fall back to console so the failure is still reported
		logger, _ = logging.NewLogger("", cfg.LogLevel)
		logger.Error("log_dir_unusable", zap.String("log_dir", cfg.LogDir), zap.Error(err))
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Error("configuration_error", zap.Error(cfgErr))
		return cfgErr
	}

	logger.Info("configuration_loaded",
		zap.Strings("urls", cfg.URLs),
		zap.Duration("interval", cfg.Interval),
		zap.Bool("test_mode", cfg.TestMode),
	)
	if cfg.TestMode {
		logger.Info("test_mode", zap.String("detail", "notifications will be logged to console instead of sent to Slack"))
	}

	mon := scheduler.NewMonitor(
		logger,
		probe.NewHTTPChecker(probe.DefaultTimeout),
		notify.New(cfg.SlackWebhook, cfg.TestMode, logger),
		cfg.URLs,
		cfg.Interval,
		cfg.TestMode,
	)
	mon.Run(ctx)
	return nil
}
