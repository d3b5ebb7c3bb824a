package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/jobsource"
)

var (
	migrateDBURL   string
	migrateSeed    bool
	migrateFeedURL string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply pending schema migrations to the PostgreSQL database.

With --seed the job tables are filled afterwards, from --feed-url when given
and from the built-in sample board otherwise.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDBURL, "db-url", "", "PostgreSQL connection URL (default DATABASE_URL)")
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Load jobs after migrating")
	migrateCmd.Flags().StringVar(&migrateFeedURL, "feed-url", "", "Remote JSON job feed to seed from")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	dbURL := firstNonEmpty(migrateDBURL, defaults.DatabaseURL)
	if dbURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required")
	}
	logger, err := cliLogger(defaults)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	applied, err := database.Migrate(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(applied) == 0 {
		_, _ = fmt.Fprintln(out, "Schema is up to date.")
	}
	for _, name := range applied {
		_, _ = fmt.Fprintf(out, "Applied %s\n", name)
	}

	if !migrateSeed {
		return nil
	}

	feed := jobsource.Fixture(time.Now())
	if migrateFeedURL != "" {
		feed, err = jobsource.NewHTTPSource(migrateFeedURL, nil).LoadFeed(ctx)
		if err != nil {
			return err
		}
	}
	if err := jobsource.Seed(ctx, database, feed); err != nil {
		return fmt.Errorf("failed to seed jobs: %w", err)
	}
	logger.Info("jobs seeded", zap.Int("jobs", len(feed.Jobs)), zap.Int("descriptions", len(feed.Details)))
	_, _ = fmt.Fprintf(out, "Seeded %d jobs.\n", len(feed.Jobs))
	return nil
}
