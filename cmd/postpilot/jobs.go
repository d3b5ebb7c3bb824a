package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/countdown"
	"github.com/postpilot/postpilot/internal/jobboard"
	"github.com/postpilot/postpilot/internal/observability"
)

var (
	jobsDBURL      string
	jobsFeedURL    string
	jobsType       string
	jobsExperience string
	jobsRemoteOnly bool
	jobsSort       string
	jobsPremium    bool
	jobsExpand     []string
	jobsJSON       bool
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job board",
	Long: `Load the job board from the configured source and print the filtered
listing followed by the premium section.

Without --db-url or --feed-url the built-in sample board is used.`,
	Example: `  postpilot jobs --job-type Full-time --sort match-score
  postpilot jobs --remote-only --premium --json`,
	Args: cobra.NoArgs,
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&jobsDBURL, "db-url", "", "PostgreSQL connection URL (default DATABASE_URL)")
	jobsCmd.Flags().StringVar(&jobsFeedURL, "feed-url", "", "Remote JSON job feed (default JOB_FEED_URL)")
	jobsCmd.Flags().StringVar(&jobsType, "job-type", "", "all, Full-time, Part-time or Contract")
	jobsCmd.Flags().StringVar(&jobsExperience, "experience", "", "all, Entry, Mid or Senior")
	jobsCmd.Flags().BoolVar(&jobsRemoteOnly, "remote-only", false, "Only show remote jobs")
	jobsCmd.Flags().StringVar(&jobsSort, "sort", "", "recommended, match-score or posted-date")
	jobsCmd.Flags().BoolVar(&jobsPremium, "premium", false, "Unlock premium listings")
	jobsCmd.Flags().StringSliceVar(&jobsExpand, "why", nil, "Job ids whose low-score reasons are shown")
	jobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(jobsCmd)
}

type jobsOutput struct {
	Jobs       []jobboard.Card          `json:"jobs"`
	Premium    []jobboard.Card          `json:"premium"`
	Filter     jobboard.FilterSelection `json:"filter"`
	NextUpdate string                   `json:"next_update"`
}

func runJobs(cmd *cobra.Command, _ []string) error {
	patch, err := buildFilterPatch(jobsType, jobsExperience, jobsSort, jobsRemoteOnly, cmd.Flags().Changed("remote-only"))
	if err != nil {
		return err
	}

	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	logger, err := cliLogger(defaults)
	if err != nil {
		return err
	}

	ctx := context.Background()
	catalog, closeFn, err := loadCatalog(ctx, firstNonEmpty(jobsDBURL, defaults.DatabaseURL), firstNonEmpty(jobsFeedURL, defaults.JobFeedURL), logger)
	if err != nil {
		return err
	}
	defer closeFn()

	state := jobboard.NewState(catalog.Jobs())
	state.SetFilter(patch)
	for _, id := range jobsExpand {
		if _, ok := state.Job(id); !ok {
			return fmt.Errorf("job %s not found", id)
		}
		state.ToggleExpanded(id)
	}

	now := time.Now()
	cd, err := countdown.New(config.DefaultRefreshSchedule, catalog.UpdatedAt())
	if err != nil {
		return err
	}

	out := jobsOutput{
		Jobs:       state.Cards(state.DerivedView(), jobsPremium, now),
		Premium:    state.Cards(state.PremiumView(), jobsPremium, now),
		Filter:     state.Filter(),
		NextUpdate: cd.Label(now),
	}
	if jobsJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	p := observability.NewPrinter(cmd.OutOrStdout())
	p.PrintFilter(out.Filter, out.NextUpdate)
	p.PrintCards("JOBS", out.Jobs)
	p.PrintCards("PREMIUM JOBS", out.Premium)
	return nil
}

// buildFilterPatch turns the filter flags into a patch. Empty strings leave
// the default selection alone; remote-only applies only when it was set.
func buildFilterPatch(jobType, experience, sort string, remoteOnly, remoteSet bool) (jobboard.FilterPatch, error) {
	var patch jobboard.FilterPatch
	if jobType != "" {
		jt, err := jobboard.ParseJobType(jobType)
		if err != nil {
			return patch, err
		}
		patch.JobType = &jt
	}
	if experience != "" {
		lvl, err := jobboard.ParseExperienceLevel(experience)
		if err != nil {
			return patch, err
		}
		patch.ExperienceLevel = &lvl
	}
	if sort != "" {
		tab, err := jobboard.ParseSortTab(sort)
		if err != nil {
			return patch, err
		}
		patch.SortTab = &tab
	}
	if remoteSet {
		patch.RemoteOnly = &remoteOnly
	}
	return patch, nil
}
