package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	profileModel "github.com/festy23/teamup/internal/profile/model"
	teamModel "github.com/festy23/teamup/internal/team/model"
)

func newScorer() Service {
	return New(nil, nil, nil, zap.NewNop().Sugar())
}

func TestService_Score(t *testing.T) {
	svc := newScorer()

	t.Run("no affinity at all", func(t *testing.T) {
		candidate := &profileModel.Profile{
			UserID:          "u1",
			TechnicalSkills: []string{"Rust"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Hackathon",
			RequiredSkills: []string{"Go"},
		}

		assert.Equal(t, 0, svc.Score(candidate, team))
	})

	t.Run("category interest only", func(t *testing.T) {
		candidate := &profileModel.Profile{
			CategoryInterests: []string{"hackathon"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"Go"},
		}

		assert.Equal(t, 20, svc.Score(candidate, team))
	})

	t.Run("full skill overlap", func(t *testing.T) {
		candidate := &profileModel.Profile{
			TechnicalSkills: []string{"Go", "PostgreSQL"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"Go", "PostgreSQL"},
		}

		assert.Equal(t, 50, svc.Score(candidate, team))
	})

	t.Run("partial skill overlap rounds", func(t *testing.T) {
		candidate := &profileModel.Profile{
			TechnicalSkills: []string{"Go"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"Go", "PostgreSQL", "Docker"},
		}

		// round(1/3 * 50) = 17
		assert.Equal(t, 17, svc.Score(candidate, team))
	})

	t.Run("soft skills count toward technical categories", func(t *testing.T) {
		candidate := &profileModel.Profile{
			SoftSkills: []string{"Leadership"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryStartup,
			EventName:      "Pitch Day",
			RequiredSkills: []string{"Leadership"},
		}

		assert.Equal(t, 50, svc.Score(candidate, team))
	})

	t.Run("non-technical category uses activities pool", func(t *testing.T) {
		candidate := &profileModel.Profile{
			TechnicalSkills: []string{"Football"},
			Activities:      []string{"Basketball"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategorySports,
			EventName:      "Campus Cup",
			RequiredSkills: []string{"Football"},
		}

		// Football is a technical skill here, not an activity, so no overlap.
		assert.Equal(t, 0, svc.Score(candidate, team))

		team.RequiredSkills = []string{"Basketball"}
		assert.Equal(t, 50, svc.Score(candidate, team))
	})

	t.Run("no stated requirements gives flat 25", func(t *testing.T) {
		candidate := &profileModel.Profile{}
		team := &teamModel.Team{
			Category:  teamModel.CategoryResearch,
			EventName: "Research Fair",
		}

		assert.Equal(t, 25, svc.Score(candidate, team))
	})

	t.Run("interest keyword in event name", func(t *testing.T) {
		candidate := &profileModel.Profile{
			Interests: []string{"robotics"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "International Robotics Challenge",
			RequiredSkills: []string{"C++"},
		}

		assert.Equal(t, 30, svc.Score(candidate, team))
	})

	t.Run("all terms max out at 100", func(t *testing.T) {
		candidate := &profileModel.Profile{
			TechnicalSkills:   []string{"Go", "PostgreSQL"},
			CategoryInterests: []string{"Hackathon"},
			Interests:         []string{"spring"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Hackathon",
			RequiredSkills: []string{"Go", "PostgreSQL"},
		}

		assert.Equal(t, 100, svc.Score(candidate, team))
	})

	t.Run("skill labels normalize before comparison", func(t *testing.T) {
		candidate := &profileModel.Profile{
			TechnicalSkills: []string{"Node.js"},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"NodeJS"},
		}

		assert.Equal(t, 50, svc.Score(candidate, team))
	})

	t.Run("empty interest keywords never match", func(t *testing.T) {
		candidate := &profileModel.Profile{
			Interests: []string{""},
		}
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"Go"},
		}

		assert.Equal(t, 0, svc.Score(candidate, team))
	})

	t.Run("more matched skills never lowers the score", func(t *testing.T) {
		team := &teamModel.Team{
			Category:       teamModel.CategoryHackathon,
			EventName:      "Spring Event",
			RequiredSkills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		}

		prev := -1
		skills := []string{"Go", "PostgreSQL", "Docker", "Kubernetes"}
		for i := 0; i <= len(skills); i++ {
			candidate := &profileModel.Profile{TechnicalSkills: skills[:i]}
			score := svc.Score(candidate, team)
			assert.GreaterOrEqual(t, score, prev)
			prev = score
		}
	})
}
