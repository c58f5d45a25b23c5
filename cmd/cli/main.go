package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campuslife/club-awards/cmd/cli/commands"
	"github.com/campuslife/club-awards/internal/config"
	"github.com/campuslife/club-awards/pkg/postgres"
	"github.com/campuslife/club-awards/pkg/utils/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	logger, err := logging.InitLogger("cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	app := &commands.AppContext{
		Cfg:      cfg,
		Database: database,
		Migrator: database,
		Logger:   logger,
		Ctx:      ctx,
		Now:      time.Now,
	}

	rootCmd := &cobra.Command{
		Use:           "club-awards",
		Short:         "Rank clubs for annual awards from engagement metrics and feedback votes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.MigrateCmd(app),
		commands.SeedCmd(app),
		commands.GenerateDataCmd(app),
		commands.RefreshMetricsCmd(app),
		commands.RankingsCmd(app),
		commands.VoteCmd(app),
		commands.NominateCmd(app),
		commands.AutoNominateCmd(app),
		commands.NominationsCmd(app),
		commands.DecideCmd(app),
		commands.ListClubsCmd(app),
		commands.ListAwardsCmd(app),
		commands.WeightsCmd(app),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", zap.Error(err))
		return err
	}

	return nil
}
