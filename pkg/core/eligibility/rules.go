package eligibility

import "github.com/campuslife/club-awards/pkg/core/model"

// DefaultRules returns the built-in ordered rule table. Order matters:
// the first rule whose pattern appears in the award name wins, so more
// specific patterns must come before broader ones.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:                "public-speaking",
			AwardPatterns:       []string{"public speaking"},
			NameKeywords:        []string{"debate", "toastmasters", "mun"},
			DescriptionKeywords: []string{"debate", "public speaking", "oratory"},
		},
		{
			Name:                "technical",
			AwardPatterns:       []string{"technical"},
			NameKeywords:        []string{"coding", "robotics", "ai", "ml"},
			DescriptionKeywords: []string{"machine learning", "programming", "software", "hackathon"},
			Category:            model.CategoryTechnical,
			// The MUN club competes in technical events despite its
			// diplomacy-focused profile
			NameOverrides: []string{"mun club"},
		},
		{
			Name:                "cultural",
			AwardPatterns:       []string{"cultural"},
			NameKeywords:        []string{"dance", "music", "photography"},
			DescriptionKeywords: []string{"dance", "music", "arts", "culture"},
			Category:            model.CategoryCultural,
		},
		{
			Name:          "most-active",
			AwardPatterns: []string{"most active"},
			MinMembers:    40,
		},
		{
			Name:               "new-club",
			AwardPatterns:      []string{"best new club", "new club"},
			FoundedWithinYears: 2,
		},
		{
			Name:            "community-impact",
			AwardPatterns:   []string{"community impact"},
			ProfileKeywords: []string{"community", "service", "impact", "outreach"},
		},
		{
			Name:            "innovation",
			AwardPatterns:   []string{"innovation"},
			ProfileKeywords: []string{"innov", "ai", "robot", "ml", "new"},
		},
		{
			Name:            "leadership",
			AwardPatterns:   []string{"leadership"},
			ProfileKeywords: []string{"leader", "organizer", "management"},
		},
	}
}
