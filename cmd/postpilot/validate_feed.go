package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/postpilot/postpilot/internal/jobsource"
	"github.com/postpilot/postpilot/internal/schemas"
)

var validateFeedCmd = &cobra.Command{
	Use:   "validate-feed <file>",
	Short: "Check a job feed file before publishing it",
	Long: `Validates a job feed JSON file against the feed schema, then converts it
the same way the HTTP source does. Prints the number of jobs and
descriptions on success.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateFeed,
}

func init() {
	rootCmd.AddCommand(validateFeedCmd)
}

func runValidateFeed(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := schemas.ValidateFile(schemas.JobFeed, path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	feed, err := jobsource.ParseFeed(data)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d jobs, %d descriptions\n", path, len(feed.Jobs), len(feed.Details))
	return nil
}
