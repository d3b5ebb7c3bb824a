package db

import (
	"time"

	"github.com/google/uuid"
)

// Tier constants for users
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// ValidTier reports whether tier is a known subscription tier.
func ValidTier(tier string) bool {
	return tier == TierFree || tier == TierPremium
}

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	Tier         string    `json:"tier"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobPosting is a stored job listing. Enum-valued columns hold the same
// strings the board uses ("Full-time", "Senior", "strong").
type JobPosting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Salary          string    `json:"salary"`
	PostedAt        time.Time `json:"posted_at"`
	MatchScore      int       `json:"match_score"`
	MatchLevel      string    `json:"match_level"`
	JobType         string    `json:"job_type"`
	Remote          bool      `json:"remote"`
	ExperienceLevel string    `json:"experience_level"`
	IsPremium       bool      `json:"is_premium"`
	WhyLowScore     []string  `json:"why_low_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobDescription is the stored enrichment for one job posting.
type JobDescription struct {
	JobID            string    `json:"job_id"`
	Overview         string    `json:"overview"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Requirements     []string  `json:"requirements,omitempty"`
	Benefits         []string  `json:"benefits,omitempty"`
	ATSScore         int       `json:"ats_score"`
	ATSSuggestions   []string  `json:"ats_suggestions,omitempty"`
	ResumeSummary    string    `json:"resume_summary,omitempty"`
	KeywordsToAdd    []string  `json:"keywords_to_add,omitempty"`
	BulletPointTips  []string  `json:"bullet_point_tips,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Sort orders for ListJobPostings
const (
	OrderByMatchScore = "match_score"
	OrderByPostedAt   = "posted_at"
)

// JobPostingFilters holds optional filters for listing job postings. Empty
// strings mean "any".
type JobPostingFilters struct {
	JobType         string
	ExperienceLevel string
	RemoteOnly      bool
	Premium         *bool
	OrderBy         string
	Limit           int
}
