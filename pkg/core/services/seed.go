package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// SeedStore defines the database operations needed for seeding
type SeedStore interface {
	GetClubs(ctx context.Context) ([]model.Club, error)
	InsertClub(ctx context.Context, club *model.Club) error
	GetAwards(ctx context.Context) ([]model.Award, error)
	InsertAward(ctx context.Context, award *model.Award) error
	SetWeights(ctx context.Context, weights model.Weights) error
}

// SeedResult summarises what a seeding run created
type SeedResult struct {
	ClubsCreated   int
	AwardsCreated  int
	WeightsCreated bool
}

// Seed populates an empty database with the sample clubs, the standard
// award catalogue and the default evaluation weights. Clubs and awards are
// only created when their tables are empty; weights are written only on a
// fresh database so a customised weight vector survives reseeding.
func Seed(ctx context.Context, store SeedStore, logger *zap.Logger) (*SeedResult, error) {
	result := &SeedResult{}

	clubs, err := store.GetClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}

	freshDatabase := len(clubs) == 0

	if freshDatabase {
		for _, club := range sampleClubs() {
			club := club
			if err := store.InsertClub(ctx, &club); err != nil {
				return nil, fmt.Errorf("failed to seed club %q: %w", club.Name, err)
			}
			result.ClubsCreated++
		}
		logger.Info("Seeded sample clubs", zap.Int("count", result.ClubsCreated))
	}

	awards, err := store.GetAwards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch awards: %w", err)
	}

	if len(awards) == 0 {
		for _, award := range sampleAwards() {
			award := award
			if err := store.InsertAward(ctx, &award); err != nil {
				return nil, fmt.Errorf("failed to seed award %q: %w", award.Name, err)
			}
			result.AwardsCreated++
		}
		logger.Info("Seeded award catalogue", zap.Int("count", result.AwardsCreated))
	}

	if freshDatabase {
		if err := store.SetWeights(ctx, model.DefaultWeights()); err != nil {
			return nil, fmt.Errorf("failed to seed weights: %w", err)
		}
		result.WeightsCreated = true
		logger.Info("Seeded default evaluation weights")
	}

	return result, nil
}

func sampleClubs() []model.Club {
	return []model.Club{
		{Name: "MUN Club", Description: "Model United Nations Club focused on diplomacy, public speaking and global issues.", Category: model.CategoryAcademic, FoundedYear: 2020, MemberCount: 45},
		{Name: "Debate Club", Description: "Competitive Debate Team with strong oratory skills and tournaments.", Category: model.CategoryAcademic, FoundedYear: 2019, MemberCount: 38},
		{Name: "Toastmasters Club", Description: "Public Speaking and Leadership Development through regular speeches and evaluations.", Category: model.CategoryAcademic, FoundedYear: 2021, MemberCount: 52},
		{Name: "Coding Club", Description: "Programming and Software Development; hosts hackathons and coding challenges.", Category: model.CategoryTechnical, FoundedYear: 2018, MemberCount: 65},
		{Name: "Robotics Club", Description: "Robotics and Automation projects; participates in innovation contests.", Category: model.CategoryTechnical, FoundedYear: 2020, MemberCount: 42},
		{Name: "AI/ML Club", Description: "Artificial Intelligence and Machine Learning research and projects.", Category: model.CategoryTechnical, FoundedYear: 2022, MemberCount: 35},
		{Name: "Dance Club", Description: "Contemporary and Classical Dance; cultural performances and arts.", Category: model.CategoryCultural, FoundedYear: 2019, MemberCount: 58},
		{Name: "Music Club", Description: "Instrumental and Vocal Music; concerts and cultural events.", Category: model.CategoryCultural, FoundedYear: 2018, MemberCount: 47},
		{Name: "Photography Club", Description: "Digital and Film Photography; arts and cultural exhibitions.", Category: model.CategoryCultural, FoundedYear: 2021, MemberCount: 33},
		{Name: "Sports Club", Description: "Various Sports Activities with regular practice and events.", Category: model.CategorySports, FoundedYear: 2017, MemberCount: 72},
		{Name: "Chess Club", Description: "Strategic Board Games; tournaments and analytical thinking.", Category: model.CategoryAcademic, FoundedYear: 2020, MemberCount: 28},
		{Name: "Literature Club", Description: "Creative Writing and Poetry; leadership in literary events.", Category: model.CategoryCultural, FoundedYear: 2019, MemberCount: 31},
	}
}

func sampleAwards() []model.Award {
	return []model.Award{
		{Name: "Best Public Speaking Club", Description: "Excellence in public speaking and communication", Category: "Communication", Criteria: "Demonstrated excellence in public speaking, debate, and communication skills"},
		{Name: "Best Technical Club", Description: "Outstanding achievements in technology and innovation", Category: model.CategoryTechnical, Criteria: "Innovation in technology projects, hackathons, and technical workshops"},
		{Name: "Best Cultural Club", Description: "Excellence in promoting arts and culture", Category: model.CategoryCultural, Criteria: "Cultural events, performances, and community engagement"},
		{Name: "Most Active Club", Description: "Highest level of engagement and participation", Category: model.CategoryGeneral, Criteria: "Regular meetings, events, and member participation"},
		{Name: "Best New Club", Description: "Outstanding performance by newly established clubs", Category: model.CategoryGeneral, Criteria: "Clubs founded within the last 2 years with exceptional growth"},
		{Name: "Community Impact Award", Description: "Significant contribution to the community", Category: model.CategoryService, Criteria: "Community service projects and social impact initiatives"},
		{Name: "Innovation Award", Description: "Creative and innovative approaches to club activities", Category: model.CategoryInnovation, Criteria: "Unique projects, creative solutions, and innovative approaches"},
		{Name: "Leadership Excellence", Description: "Outstanding leadership and organizational skills", Category: model.CategoryLeadership, Criteria: "Effective leadership, team management, and organizational success"},
	}
}
