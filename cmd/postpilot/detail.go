package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/postpilot/postpilot/internal/jobboard"
	"github.com/postpilot/postpilot/internal/observability"
)

var (
	detailDBURL   string
	detailFeedURL string
	detailPremium bool
	detailJSON    bool
)

// errPremiumRequired matches the message the API returns for the same case.
var errPremiumRequired = errors.New("premium membership required to view this job")

var detailCmd = &cobra.Command{
	Use:   "detail <job-id>",
	Short: "Show one job with its description and resume tips",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetail,
}

func init() {
	detailCmd.Flags().StringVar(&detailDBURL, "db-url", "", "PostgreSQL connection URL (default DATABASE_URL)")
	detailCmd.Flags().StringVar(&detailFeedURL, "feed-url", "", "Remote JSON job feed (default JOB_FEED_URL)")
	detailCmd.Flags().BoolVar(&detailPremium, "premium", false, "Unlock premium listings")
	detailCmd.Flags().BoolVar(&detailJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(detailCmd)
}

type detailOutput struct {
	Card   jobboard.Card   `json:"card"`
	Detail jobboard.Detail `json:"detail"`
}

func runDetail(cmd *cobra.Command, args []string) error {
	id := args[0]

	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	logger, err := cliLogger(defaults)
	if err != nil {
		return err
	}

	catalog, closeFn, err := loadCatalog(context.Background(), firstNonEmpty(detailDBURL, defaults.DatabaseURL), firstNonEmpty(detailFeedURL, defaults.JobFeedURL), logger)
	if err != nil {
		return err
	}
	defer closeFn()

	job, ok := catalog.Job(id)
	if !ok {
		return fmt.Errorf("job %s not found", id)
	}
	if job.IsPremium && !detailPremium {
		return errPremiumRequired
	}

	out := detailOutput{
		Card:   jobboard.Present(job, job.IsBookmarked, false, true, time.Now()),
		Detail: catalog.Detail(id),
	}
	if detailJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintJobDetail(out.Card, out.Detail)
	return nil
}
