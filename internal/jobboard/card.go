package jobboard

import "time"

// Match colors used by the dashboard's card badges
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorGray   = "gray"
)

// UpgradePrompt replaces the content of premium cards for free users.
const UpgradePrompt = "Upgrade to Premium to unlock this job"

// Card holds the display fields for one job card.
type Card struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary"`
	PostedLabel     string          `json:"posted"`
	MatchScore      int             `json:"match_score"`
	MatchLevel      MatchLevel      `json:"match_level"`
	MatchColor      string          `json:"match_color"`
	Type            JobType         `json:"type"`
	Remote          bool            `json:"remote"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Bookmarked      bool            `json:"bookmarked"`
	Premium         bool            `json:"premium"`
	Locked          bool            `json:"locked"`
	UpgradePrompt   string          `json:"upgrade_prompt,omitempty"`
	ShowWhyLowScore bool            `json:"show_why_low_score"`
	WhyLowScoreOpen bool            `json:"why_low_score_open"`
	WhyLowScore     []string        `json:"why_low_score,omitempty"`
}

// MatchColor maps a match level to its badge color.
func MatchColor(level MatchLevel) string {
	switch level {
	case MatchStrong:
		return ColorGreen
	case MatchFair:
		return ColorYellow
	case MatchLow:
		return ColorRed
	default:
		return ColorGray
	}
}

// ShowWhyLowScore reports whether the card offers the "why low score" panel.
func ShowWhyLowScore(p JobPosting) bool {
	return p.MatchLevel == MatchLow && len(p.WhyLowScore) > 0
}

// Present maps a posting and its per-card flags to display fields. Premium
// postings are locked unless unlocked is true; a locked card hides title,
// company and salary behind the upgrade prompt.
func Present(p JobPosting, bookmarked, expanded, unlocked bool, now time.Time) Card {
	showWhy := ShowWhyLowScore(p)
	card := Card{
		ID:              p.ID,
		Title:           p.Title,
		Company:         p.Company,
		Location:        p.Location,
		Salary:          p.Salary,
		PostedLabel:     p.PostedLabel(now),
		MatchScore:      p.MatchScore,
		MatchLevel:      p.MatchLevel,
		MatchColor:      MatchColor(p.MatchLevel),
		Type:            p.Type,
		Remote:          p.Remote,
		ExperienceLevel: p.ExperienceLevel,
		Bookmarked:      bookmarked,
		Premium:         p.IsPremium,
		ShowWhyLowScore: showWhy,
		WhyLowScoreOpen: showWhy && expanded,
	}
	if card.WhyLowScoreOpen {
		card.WhyLowScore = append([]string(nil), p.WhyLowScore...)
	}

	if p.IsPremium && !unlocked {
		card.Locked = true
		card.UpgradePrompt = UpgradePrompt
		card.Title = ""
		card.Company = ""
		card.Salary = ""
	}
	return card
}

// Cards presents every posting in jobs using the flags held by s.
func (s *State) Cards(jobs []JobPosting, unlocked bool, now time.Time) []Card {
	cards := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, Present(j, j.IsBookmarked, s.IsExpanded(j.ID), unlocked, now))
	}
	return cards
}
