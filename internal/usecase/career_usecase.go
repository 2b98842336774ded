package usecase

import (
	"net/url"
	"sort"

	"go-futurejob-backend/internal/domain"
)

const (
	jobSearchBaseURL   = "https://www.linkedin.com/jobs/search/?keywords="
	videoSearchBaseURL = "https://www.youtube.com/results?search_query="
)

// careerUsecase scores quiz answers against the static catalog. Stateless:
// no persistence, no history, no side effects.
type careerUsecase struct {
	questions []domain.QuizQuestion
	careers   []domain.CareerProfile
	byName    map[string]domain.CareerProfile
}

func NewCareerUsecase() domain.CareerUsecase {
	byName := make(map[string]domain.CareerProfile, len(domain.Careers))
	for _, c := range domain.Careers {
		byName[c.Name] = c
	}
	return &careerUsecase{
		questions: domain.Questions,
		careers:   domain.Careers,
		byName:    byName,
	}
}

func (u *careerUsecase) Questions() []domain.QuizQuestion {
	return u.questions
}

func (u *careerUsecase) ChecklistItems() []string {
	return domain.ChecklistItems
}

func (u *careerUsecase) SuggestedSteps() []string {
	return domain.SuggestedSteps
}

func (u *careerUsecase) CareerByName(name string) (domain.CareerProfile, bool) {
	c, ok := u.byName[name]
	return c, ok
}

// Predict sums the per-tag "Yes" counts over each career's tags, ranks the
// catalog by that score descending and returns the top 5. The sort is stable,
// so equal scores resolve to catalog declaration order.
func (u *careerUsecase) Predict(answers map[string]int) []domain.CareerMatch {
	matches := make([]domain.CareerMatch, 0, len(u.careers))
	for _, career := range u.careers {
		score := 0
		for _, tag := range career.Tags {
			score += answers[tag]
		}
		if career.Icon == "" {
			career.Icon = domain.DefaultCareerIcon
		}
		matches = append(matches, domain.CareerMatch{
			Career:     career,
			MatchCount: score,
			SearchURL:  jobSearchBaseURL + quote(career.Name),
			VideoURL:   videoSearchBaseURL + quote(career.Name+" career"),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})

	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}

// quote percent-encodes a career name for the outbound deep links. Spaces
// become %20, not '+', so the URLs match the original byte for byte.
func quote(s string) string {
	return url.PathEscape(s)
}
