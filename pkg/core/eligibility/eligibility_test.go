package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/club-awards/pkg/core/model"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRuleFor_FirstMatchWins(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	// "most active" appears in the table before "new club", so an award
	// name containing both resolves to the membership rule
	rule := resolver.RuleFor("Most Active New Club")
	require.NotNil(t, rule)
	assert.Equal(t, "most-active", rule.Name)
}

func TestRuleFor_CaseInsensitive(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	rule := resolver.RuleFor("BEST TECHNICAL CLUB")
	require.NotNil(t, rule)
	assert.Equal(t, "technical", rule.Name)
}

func TestRuleFor_UnknownAwardAcceptsAll(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	assert.Nil(t, resolver.RuleFor("Spirit of the Year"))

	club := model.Club{Name: "Origami Club", Category: model.CategoryGeneral}
	assert.True(t, resolver.Eligible("Spirit of the Year", club))
}

func TestEligible_TechnicalByDescription(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	club := model.Club{
		Name:        "Builders Society",
		Description: "We run a yearly hackathon for the campus.",
		Category:    model.CategoryGeneral,
	}

	assert.True(t, resolver.Eligible("Best Technical Club", club))
}

func TestEligible_TechnicalByCategory(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	club := model.Club{
		Name:        "Makers Guild",
		Description: "Hands-on building sessions.",
		Category:    model.CategoryTechnical,
	}

	assert.True(t, resolver.Eligible("Best Technical Club", club))
}

func TestEligible_MUNOverrideForTechnical(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	// Nothing in the MUN club's profile matches the technical keywords,
	// the name override alone admits it
	club := model.Club{
		Name:        "MUN Club",
		Description: "Model United Nations focused on diplomacy and global issues.",
		Category:    model.CategoryAcademic,
	}

	assert.True(t, resolver.Eligible("Best Technical Club", club))
	assert.False(t, resolver.Eligible("Best Cultural Club", club))
}

func TestEligible_MostActiveMembershipThreshold(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	big := model.Club{Name: "Sports Club", MemberCount: 40}
	small := model.Club{Name: "Chess Club", MemberCount: 39}

	assert.True(t, resolver.Eligible("Most Active Club", big))
	assert.False(t, resolver.Eligible("Most Active Club", small))
}

func TestEligible_NewClubFoundedWindow(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	recent := model.Club{Name: "AI/ML Club", FoundedYear: 2024}
	boundary := model.Club{Name: "Film Club", FoundedYear: 2023}
	old := model.Club{Name: "Music Club", FoundedYear: 2020}

	assert.True(t, resolver.Eligible("Best New Club", recent))
	// Founded exactly now.Year()-2 still counts as new
	assert.True(t, resolver.Eligible("Best New Club", boundary))
	assert.False(t, resolver.Eligible("Best New Club", old))
}

func TestEligible_PublicSpeakingByName(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	club := model.Club{
		Name:        "Debate Club",
		Description: "Competitive tournaments.",
	}

	assert.True(t, resolver.Eligible("Best Public Speaking Club", club))
}

func TestEligible_CommunityImpactUsesAchievements(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	club := model.Club{
		Name:         "Hiking Club",
		Description:  "Weekend treks.",
		Achievements: "Organized a community cleanup drive.",
	}

	assert.True(t, resolver.Eligible("Community Impact Award", club))
}

func TestEligibleClubs_PreservesOrder(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	clubs := []model.Club{
		{ID: 3, Name: "Coding Club", Category: model.CategoryTechnical},
		{ID: 1, Name: "Dance Club", Category: model.CategoryCultural},
		{ID: 2, Name: "Robotics Club", Category: model.CategoryTechnical},
	}

	eligible := resolver.EligibleClubs("Best Technical Club", clubs)
	require.Len(t, eligible, 2)
	assert.Equal(t, int64(3), eligible[0].ID)
	assert.Equal(t, int64(2), eligible[1].ID)
}

func TestEligibleClubs_NoRuleReturnsAll(t *testing.T) {
	resolver := NewDefaultResolver(testNow)

	clubs := []model.Club{
		{ID: 1, Name: "Chess Club"},
		{ID: 2, Name: "Film Club"},
	}

	assert.Len(t, resolver.EligibleClubs("Presidents' Choice", clubs), 2)
}
