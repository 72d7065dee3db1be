package service

import (
	"context"
	"sort"

	matchingModel "github.com/festy23/teamup/internal/matching/model"
)

// minFeedScore is the cut below which a team is not worth recommending.
const minFeedScore = 20

// Recommend scores every team for the candidate, drops results below
// minFeedScore and the teams the candidate already belongs to, and sorts
// descending by score. The sort is stable: equal-score teams keep their
// enumeration order.
func (s *service) Recommend(
	ctx context.Context,
	userID string,
) (*matchingModel.RecommendationsResponse, error) {
	candidate, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}

	memberTeamIDs, err := s.teams.ListMemberTeamIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	memberOf := make(map[string]struct{}, len(memberTeamIDs))
	for _, id := range memberTeamIDs {
		memberOf[id] = struct{}{}
	}

	results := make([]matchingModel.MatchResult, 0, len(teams))
	for i := range teams {
		team := &teams[i]
		if _, ok := memberOf[team.TeamID]; ok {
			continue
		}

		score := s.Score(candidate, team)
		if score < minFeedScore {
			continue
		}

		results = append(results, matchingModel.MatchResult{
			Team:  team.ToResponse(nil),
			Score: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	s.logger.Debugw("recommendations computed",
		"user_id", userID,
		"candidates", len(teams),
		"results", len(results),
	)

	return &matchingModel.RecommendationsResponse{
		Results: results,
		Total:   len(results),
	}, nil
}
