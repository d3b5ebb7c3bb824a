package jobsource

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/jobboard"
)

// JobStore is the subset of *db.DB read by PostgresSource.
type JobStore interface {
	ListJobPostings(ctx context.Context, filters db.JobPostingFilters) ([]db.JobPosting, error)
	ListJobDescriptions(ctx context.Context) (map[string]db.JobDescription, error)
}

// JobWriter is the subset of *db.DB written by Seed.
type JobWriter interface {
	UpsertJobPosting(ctx context.Context, p *db.JobPosting) error
	UpsertJobDescription(ctx context.Context, d *db.JobDescription) error
}

// PostgresSource reads postings and descriptions from the database.
type PostgresSource struct {
	store  JobStore
	logger *zap.Logger
}

// NewPostgresSource returns a source backed by store.
func NewPostgresSource(store JobStore, logger *zap.Logger) *PostgresSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresSource{store: store, logger: logger}
}

// ListJobs implements Source.
func (s *PostgresSource) ListJobs(ctx context.Context) ([]jobboard.JobPosting, error) {
	rows, err := s.store.ListJobPostings(ctx, db.JobPostingFilters{})
	if err != nil {
		return nil, err
	}

	jobs := make([]jobboard.JobPosting, 0, len(rows))
	for _, row := range rows {
		job, err := postingFromRow(row)
		if err != nil {
			s.logger.Warn("skipping invalid job posting row",
				zap.String("job_id", row.ID), zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// LoadFeed implements FeedSource. Descriptions for postings that were skipped
// are dropped.
func (s *PostgresSource) LoadFeed(ctx context.Context) (*Feed, error) {
	jobs, err := s.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListJobDescriptions(ctx)
	if err != nil {
		return nil, err
	}

	details := make(jobboard.DetailCatalog, len(rows))
	for _, j := range jobs {
		if row, ok := rows[j.ID]; ok {
			details[j.ID] = descriptionFromRow(row)
		}
	}
	return &Feed{Jobs: jobs, Details: details}, nil
}

// Seed writes every posting and description in feed to the store.
func Seed(ctx context.Context, store JobWriter, feed *Feed) error {
	for _, j := range feed.Jobs {
		row := rowFromPosting(j)
		if err := store.UpsertJobPosting(ctx, &row); err != nil {
			return err
		}
	}
	for _, j := range feed.Jobs {
		d, ok := feed.Details[j.ID]
		if !ok {
			continue
		}
		row := rowFromDescription(j.ID, d)
		if err := store.UpsertJobDescription(ctx, &row); err != nil {
			return err
		}
	}
	return nil
}

func postingFromRow(row db.JobPosting) (jobboard.JobPosting, error) {
	jobType, err := jobboard.ParseJobType(row.JobType)
	if err != nil {
		return jobboard.JobPosting{}, err
	}
	level, err := jobboard.ParseExperienceLevel(row.ExperienceLevel)
	if err != nil {
		return jobboard.JobPosting{}, err
	}
	match, err := jobboard.ParseMatchLevel(row.MatchLevel)
	if err != nil {
		match = jobboard.MatchLevelForScore(row.MatchScore)
	}
	if row.MatchScore < 0 || row.MatchScore > 100 {
		return jobboard.JobPosting{}, fmt.Errorf("match score %d out of range", row.MatchScore)
	}

	return jobboard.JobPosting{
		ID:              row.ID,
		Title:           row.Title,
		Company:         row.Company,
		Location:        row.Location,
		Salary:          row.Salary,
		PostedAt:        row.PostedAt,
		MatchScore:      row.MatchScore,
		MatchLevel:      match,
		Type:            jobType,
		Remote:          row.Remote,
		ExperienceLevel: level,
		IsPremium:       row.IsPremium,
		WhyLowScore:     row.WhyLowScore,
	}, nil
}

func rowFromPosting(j jobboard.JobPosting) db.JobPosting {
	return db.JobPosting{
		ID:              j.ID,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Salary:          j.Salary,
		PostedAt:        j.PostedAt,
		MatchScore:      j.MatchScore,
		MatchLevel:      string(j.MatchLevel),
		JobType:         string(j.Type),
		Remote:          j.Remote,
		ExperienceLevel: string(j.ExperienceLevel),
		IsPremium:       j.IsPremium,
		WhyLowScore:     j.WhyLowScore,
	}
}

func descriptionFromRow(row db.JobDescription) jobboard.JobDescription {
	return jobboard.JobDescription{
		Overview:         row.Overview,
		Responsibilities: row.Responsibilities,
		Requirements:     row.Requirements,
		Benefits:         row.Benefits,
		ATS: jobboard.ATSOptimization{
			Score:       row.ATSScore,
			Suggestions: row.ATSSuggestions,
		},
		ResumeHelp: jobboard.ResumeHelp{
			Summary:         row.ResumeSummary,
			KeywordsToAdd:   row.KeywordsToAdd,
			BulletPointTips: row.BulletPointTips,
		},
	}
}

func rowFromDescription(jobID string, d jobboard.JobDescription) db.JobDescription {
	return db.JobDescription{
		JobID:            jobID,
		Overview:         d.Overview,
		Responsibilities: d.Responsibilities,
		Requirements:     d.Requirements,
		Benefits:         d.Benefits,
		ATSScore:         d.ATS.Score,
		ATSSuggestions:   d.ATS.Suggestions,
		ResumeSummary:    d.ResumeHelp.Summary,
		KeywordsToAdd:    d.ResumeHelp.KeywordsToAdd,
		BulletPointTips:  d.ResumeHelp.BulletPointTips,
	}
}
