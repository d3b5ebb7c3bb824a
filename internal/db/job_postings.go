package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Posting Methods
// -----------------------------------------------------------------------------

// DefaultJobPostingLimit caps ListJobPostings when no limit is given.
const DefaultJobPostingLimit = 200

const jobPostingColumns = `id, title, company, location, salary, posted_at, match_score,
	match_level, job_type, remote, experience_level, is_premium, why_low_score,
	created_at, updated_at`

func scanJobPosting(row pgx.Row) (*JobPosting, error) {
	var p JobPosting
	var whyJSON []byte
	err := row.Scan(&p.ID, &p.Title, &p.Company, &p.Location, &p.Salary, &p.PostedAt,
		&p.MatchScore, &p.MatchLevel, &p.JobType, &p.Remote, &p.ExperienceLevel,
		&p.IsPremium, &whyJSON, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.WhyLowScore = decodeStrings(whyJSON)
	return &p, nil
}

// UpsertJobPosting inserts or replaces a job posting by ID.
func (db *DB) UpsertJobPosting(ctx context.Context, p *JobPosting) error {
	if p.ID == "" {
		return fmt.Errorf("job posting id is required")
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, title, company, location, salary, posted_at,
		        match_score, match_level, job_type, remote, experience_level,
		        is_premium, why_low_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		        title = EXCLUDED.title,
		        company = EXCLUDED.company,
		        location = EXCLUDED.location,
		        salary = EXCLUDED.salary,
		        posted_at = EXCLUDED.posted_at,
		        match_score = EXCLUDED.match_score,
		        match_level = EXCLUDED.match_level,
		        job_type = EXCLUDED.job_type,
		        remote = EXCLUDED.remote,
		        experience_level = EXCLUDED.experience_level,
		        is_premium = EXCLUDED.is_premium,
		        why_low_score = EXCLUDED.why_low_score,
		        updated_at = NOW()`,
		p.ID, p.Title, p.Company, p.Location, p.Salary, p.PostedAt,
		p.MatchScore, p.MatchLevel, p.JobType, p.Remote, p.ExperienceLevel,
		p.IsPremium, encodeStrings(p.WhyLowScore),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job posting %s: %w", p.ID, err)
	}
	return nil
}

// GetJobPostingByID retrieves a job posting by its ID. Returns nil, nil when
// not found.
func (db *DB) GetJobPostingByID(ctx context.Context, id string) (*JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// ListJobPostings retrieves job postings matching the filters. Ties in the
// requested order are broken by id so results are deterministic.
func (db *DB) ListJobPostings(ctx context.Context, filters JobPostingFilters) ([]JobPosting, error) {
	query, args := buildListJobPostingsQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}
	return postings, nil
}

func buildListJobPostingsQuery(filters JobPostingFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultJobPostingLimit
	}

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobType != "" {
		query += fmt.Sprintf(" AND job_type = $%d", argNum)
		args = append(args, filters.JobType)
		argNum++
	}
	if filters.ExperienceLevel != "" {
		query += fmt.Sprintf(" AND experience_level = $%d", argNum)
		args = append(args, filters.ExperienceLevel)
		argNum++
	}
	if filters.RemoteOnly {
		query += " AND remote"
	}
	if filters.Premium != nil {
		query += fmt.Sprintf(" AND is_premium = $%d", argNum)
		args = append(args, *filters.Premium)
		argNum++
	}

	switch filters.OrderBy {
	case OrderByPostedAt:
		query += " ORDER BY posted_at DESC, id ASC"
	default:
		query += " ORDER BY match_score DESC, id ASC"
	}

	query += fmt.Sprintf(" LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// DeleteJobPosting deletes a job posting and its description (via cascade).
func (db *DB) DeleteJobPosting(ctx context.Context, id string) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job posting not found: %s", id)
	}
	return nil
}
