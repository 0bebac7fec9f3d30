package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/app"
	"github.com/abhisek/tidenav/internal/config"
	"github.com/abhisek/tidenav/internal/logging"
)

// runApp loads config, builds the logger, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", version),
		zap.Bool("skip_intro", cfg.SkipIntro),
		zap.Duration("settle_delay", cfg.SettleDelay))

	return app.Run(app.Options{
		Config: cfg,
		Logger: logger,
	})
}
