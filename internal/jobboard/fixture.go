package jobboard

import "time"

// SampleJobs returns the sample board: five regular postings and one
// premium posting, with PostedAt relative to now.
func SampleJobs(now time.Time) []JobPosting {
	return []JobPosting{
		{
			ID:              "1",
			Title:           "Senior Frontend Developer",
			Company:         "TechCorp Inc.",
			Location:        "San Francisco, CA",
			Salary:          "$120k - $150k",
			PostedAt:        now.Add(-2 * time.Hour),
			MatchScore:      95,
			MatchLevel:      MatchStrong,
			Type:            FullTime,
			Remote:          true,
			ExperienceLevel: Senior,
		},
		{
			ID:              "2",
			Title:           "Full Stack Engineer",
			Company:         "StartupXYZ",
			Location:        "New York, NY",
			Salary:          "$100k - $130k",
			PostedAt:        now.Add(-24 * time.Hour),
			MatchScore:      88,
			MatchLevel:      MatchStrong,
			Type:            FullTime,
			Remote:          true,
			ExperienceLevel: Mid,
			IsBookmarked:    true,
		},
		{
			ID:              "3",
			Title:           "React Developer",
			Company:         "Digital Agency Co.",
			Location:        "Austin, TX",
			Salary:          "$90k - $110k",
			PostedAt:        now.Add(-3 * 24 * time.Hour),
			MatchScore:      72,
			MatchLevel:      MatchFair,
			Type:            FullTime,
			Remote:          false,
			ExperienceLevel: Mid,
		},
		{
			ID:              "4",
			Title:           "Junior Web Developer",
			Company:         "WebSolutions LLC",
			Location:        "Chicago, IL",
			Salary:          "$60k - $75k",
			PostedAt:        now.Add(-7 * 24 * time.Hour),
			MatchScore:      45,
			MatchLevel:      MatchLow,
			Type:            FullTime,
			Remote:          false,
			ExperienceLevel: Entry,
			WhyLowScore: []string{
				"Role targets entry-level candidates; your profile is senior",
				"Salary range is below your stated expectations",
				"Requires on-site presence in Chicago",
			},
		},
		{
			ID:              "5",
			Title:           "UI Engineer",
			Company:         "DesignFirst Studio",
			Location:        "Seattle, WA",
			Salary:          "$110k - $135k",
			PostedAt:        now.Add(-5 * time.Hour),
			MatchScore:      52,
			MatchLevel:      MatchLow,
			Type:            FullTime,
			Remote:          true,
			ExperienceLevel: Senior,
			WhyLowScore: []string{
				"Heavy emphasis on Figma and visual design skills",
				"Missing experience with design systems at scale",
			},
		},
		{
			ID:              "6",
			Title:           "Principal Platform Engineer",
			Company:         "Stealth AI Lab",
			Location:        "Palo Alto, CA",
			Salary:          "$220k - $260k",
			PostedAt:        now.Add(-30 * time.Minute),
			MatchScore:      91,
			MatchLevel:      MatchStrong,
			Type:            FullTime,
			Remote:          false,
			ExperienceLevel: Senior,
			IsPremium:       true,
		},
	}
}

// SampleDetails returns enrichment for part of the sample board. Jobs 4 and
// 5 deliberately have none.
func SampleDetails() DetailCatalog {
	return DetailCatalog{
		"1": {
			Overview: "TechCorp is hiring a Senior Frontend Developer to lead the rebuild of its customer dashboard in React and TypeScript.",
			Responsibilities: []string{
				"Own the architecture of the dashboard frontend",
				"Mentor a team of four frontend engineers",
				"Partner with design on a shared component library",
			},
			Requirements: []string{
				"5+ years building production React applications",
				"Strong TypeScript and testing practices",
				"Experience with performance profiling in the browser",
			},
			Benefits: []string{"Fully remote", "Equity package", "Annual learning budget"},
			ATS: ATSOptimization{
				Score: 87,
				Suggestions: []string{
					"Mention TypeScript in your most recent role",
					"Quantify the performance improvements you delivered",
				},
			},
			ResumeHelp: ResumeHelp{
				Summary:         "Lead with frontend architecture ownership and mentoring.",
				KeywordsToAdd:   []string{"TypeScript", "component library", "Core Web Vitals"},
				BulletPointTips: []string{"Start bullets with the outcome, then the technique"},
			},
		},
		"2": {
			Overview: "StartupXYZ needs a Full Stack Engineer to ship features end to end across a Go API and a Next.js frontend.",
			Responsibilities: []string{
				"Build product features from database to UI",
				"Participate in on-call rotation",
			},
			Requirements: []string{
				"3+ years of full stack experience",
				"Comfort with PostgreSQL and REST API design",
			},
			Benefits: []string{"Remote-first", "Home office stipend"},
			ATS: ATSOptimization{
				Score:       78,
				Suggestions: []string{"Add PostgreSQL to your skills section"},
			},
			ResumeHelp: ResumeHelp{
				Summary:       "Show breadth: one bullet per layer of the stack.",
				KeywordsToAdd: []string{"PostgreSQL", "REST", "Next.js"},
			},
		},
		"3": {
			Overview: "Digital Agency Co. builds marketing sites for consumer brands and needs a React Developer on its Austin team.",
			Responsibilities: []string{
				"Implement responsive pages from design mockups",
				"Maintain client websites",
			},
			Requirements: []string{"2+ years of React", "CSS animation experience"},
			Benefits:     []string{"Hybrid schedule", "Health insurance"},
			ATS: ATSOptimization{
				Score:       69,
				Suggestions: []string{"List client-facing projects explicitly"},
			},
			ResumeHelp: ResumeHelp{
				Summary:       "Highlight agency or multi-client experience.",
				KeywordsToAdd: []string{"responsive design", "animation"},
			},
		},
		"6": {
			Overview: "A stealth-stage AI lab is hiring a Principal Platform Engineer to design its training infrastructure.",
			Responsibilities: []string{
				"Design the cluster scheduling platform",
				"Set engineering standards across teams",
			},
			Requirements: []string{"10+ years in distributed systems", "Kubernetes at scale"},
			Benefits:     []string{"Top-of-market equity", "Relocation support"},
			ATS: ATSOptimization{
				Score:       90,
				Suggestions: []string{"Mention GPU scheduling if applicable"},
			},
			ResumeHelp: ResumeHelp{
				Summary:       "Emphasize org-wide technical leadership.",
				KeywordsToAdd: []string{"distributed systems", "Kubernetes", "GPU"},
			},
		},
	}
}
