package jobboard

// DescriptionUnavailable is the message shown when a job has no enrichment.
const DescriptionUnavailable = "description unavailable"

// JobDescription is the enrichment shown in the job detail modal.
type JobDescription struct {
	Overview         string          `json:"overview"`
	Responsibilities []string        `json:"responsibilities"`
	Requirements     []string        `json:"requirements"`
	Benefits         []string        `json:"benefits"`
	ATS              ATSOptimization `json:"ats"`
	ResumeHelp       ResumeHelp      `json:"resume_help"`
}

// ATSOptimization is the applicant-tracking-system fit of the user's resume.
type ATSOptimization struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// ResumeHelp holds tailoring tips for a specific job.
type ResumeHelp struct {
	Summary         string   `json:"summary"`
	KeywordsToAdd   []string `json:"keywords_to_add"`
	BulletPointTips []string `json:"bullet_point_tips"`
}

// DetailCatalog maps job ids to their enrichment.
type DetailCatalog map[string]JobDescription

// Detail is the read-only projection for one job id.
type Detail struct {
	JobID       string          `json:"job_id"`
	Available   bool            `json:"available"`
	Message     string          `json:"message,omitempty"`
	Description *JobDescription `json:"description,omitempty"`
}

// Lookup returns the detail for id, or the "description unavailable"
// placeholder when the catalog has no entry.
func (c DetailCatalog) Lookup(id string) Detail {
	desc, ok := c[id]
	if !ok {
		return Detail{JobID: id, Message: DescriptionUnavailable}
	}
	return Detail{JobID: id, Available: true, Description: &desc}
}
