package service

import (
	"math"
	"strings"

	profileModel "github.com/festy23/teamup/internal/profile/model"
	teamModel "github.com/festy23/teamup/internal/team/model"
)

// Score term weights. The three terms are independent and sum to at most
// 100, so the result needs no clamping.
const (
	categoryInterestPoints = 20
	skillOverlapMaxPoints  = 50
	noRequirementPoints    = 25
	interestKeywordPoints  = 30
)

// Score computes the 0-100 affinity between a candidate and a team.
//
// Three additive terms:
//   - +20 when the team category appears in the candidate's category
//     interests (case-insensitive);
//   - up to +50 for the overlap between the team's required skills and the
//     candidate's relevant pool (activities for non-technical categories,
//     technical plus soft skills otherwise), proportional to the matched
//     fraction; a team with no stated requirements contributes a flat 25;
//   - +30 when any of the candidate's interest keywords occurs as a
//     case-insensitive substring of the event name.
func (s *service) Score(candidate *profileModel.Profile, team *teamModel.Team) int {
	score := 0

	if hasCategoryInterest(candidate.CategoryInterests, team.Category) {
		score += categoryInterestPoints
	}

	score += s.skillOverlapTerm(candidate, team)

	if hasInterestKeyword(candidate.Interests, team.EventName) {
		score += interestKeywordPoints
	}

	return score
}

// skillOverlapTerm computes the skill/activity overlap term.
func (s *service) skillOverlapTerm(candidate *profileModel.Profile, team *teamModel.Team) int {
	if len(team.RequiredSkills) == 0 {
		// A team that states no explicit requirement is not penalized
		// to zero.
		return noRequirementPoints
	}

	var pool []string
	if teamModel.IsNonTechnicalCategory(team.Category) {
		pool = candidate.Activities
	} else {
		pool = make([]string, 0, len(candidate.TechnicalSkills)+len(candidate.SoftSkills))
		pool = append(pool, candidate.TechnicalSkills...)
		pool = append(pool, candidate.SoftSkills...)
	}

	required := normalizeSet(team.RequiredSkills, s.normalize)
	have := normalizeSet(pool, s.normalize)

	matched := 0
	for key := range required {
		if _, ok := have[key]; ok {
			matched++
		}
	}

	fraction := float64(matched) / float64(len(team.RequiredSkills))
	return int(math.Round(fraction * skillOverlapMaxPoints))
}

// hasCategoryInterest checks the category against declared interests,
// case-insensitively.
func hasCategoryInterest(interests []string, category string) bool {
	for _, interest := range interests {
		if strings.EqualFold(interest, category) {
			return true
		}
	}
	return false
}

// hasInterestKeyword checks whether any interest keyword occurs as a
// case-insensitive substring of the event name.
func hasInterestKeyword(interests []string, eventName string) bool {
	event := strings.ToLower(eventName)
	for _, interest := range interests {
		if interest == "" {
			continue
		}
		if strings.Contains(event, strings.ToLower(interest)) {
			return true
		}
	}
	return false
}
