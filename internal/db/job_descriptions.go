package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const jobDescriptionColumns = `job_id, overview, responsibilities, requirements, benefits,
	ats_score, ats_suggestions, resume_summary, keywords_to_add, bullet_point_tips, updated_at`

func scanJobDescription(row pgx.Row) (*JobDescription, error) {
	var d JobDescription
	var resp, reqs, benefits, suggestions, keywords, tips []byte
	err := row.Scan(&d.JobID, &d.Overview, &resp, &reqs, &benefits, &d.ATSScore,
		&suggestions, &d.ResumeSummary, &keywords, &tips, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Responsibilities = decodeStrings(resp)
	d.Requirements = decodeStrings(reqs)
	d.Benefits = decodeStrings(benefits)
	d.ATSSuggestions = decodeStrings(suggestions)
	d.KeywordsToAdd = decodeStrings(keywords)
	d.BulletPointTips = decodeStrings(tips)
	return &d, nil
}

// UpsertJobDescription inserts or replaces the description for a job posting.
// The posting must already exist.
func (db *DB) UpsertJobDescription(ctx context.Context, d *JobDescription) error {
	if d.JobID == "" {
		return fmt.Errorf("job id is required")
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_descriptions (job_id, overview, responsibilities, requirements,
		        benefits, ats_score, ats_suggestions, resume_summary, keywords_to_add,
		        bullet_point_tips)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (job_id) DO UPDATE SET
		        overview = EXCLUDED.overview,
		        responsibilities = EXCLUDED.responsibilities,
		        requirements = EXCLUDED.requirements,
		        benefits = EXCLUDED.benefits,
		        ats_score = EXCLUDED.ats_score,
		        ats_suggestions = EXCLUDED.ats_suggestions,
		        resume_summary = EXCLUDED.resume_summary,
		        keywords_to_add = EXCLUDED.keywords_to_add,
		        bullet_point_tips = EXCLUDED.bullet_point_tips,
		        updated_at = NOW()`,
		d.JobID, d.Overview, encodeStrings(d.Responsibilities), encodeStrings(d.Requirements),
		encodeStrings(d.Benefits), d.ATSScore, encodeStrings(d.ATSSuggestions), d.ResumeSummary,
		encodeStrings(d.KeywordsToAdd), encodeStrings(d.BulletPointTips),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job description %s: %w", d.JobID, err)
	}
	return nil
}

// GetJobDescription retrieves the description for a job posting. Returns
// nil, nil when the posting has none.
func (db *DB) GetJobDescription(ctx context.Context, jobID string) (*JobDescription, error) {
	d, err := scanJobDescription(db.pool.QueryRow(ctx,
		`SELECT `+jobDescriptionColumns+` FROM job_descriptions WHERE job_id = $1`, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return d, nil
}

// ListJobDescriptions returns every stored description keyed by job id.
func (db *DB) ListJobDescriptions(ctx context.Context) (map[string]JobDescription, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+jobDescriptionColumns+` FROM job_descriptions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]JobDescription)
	for rows.Next() {
		d, err := scanJobDescription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job description: %w", err)
		}
		out[d.JobID] = *d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job descriptions: %w", err)
	}
	return out, nil
}
