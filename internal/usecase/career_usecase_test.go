package usecase_test

import (
	"testing"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestQuestionBank(t *testing.T) {
	uc := usecase.NewCareerUsecase()

	questions := uc.Questions()
	assert.Len(t, questions, 18)
	assert.Equal(t, "technical", questions[0].Tag)
	assert.Equal(t, "freelance", questions[17].Tag)

	// Every question tag must appear in at least one career's tag set,
	// otherwise a "Yes" answer could never influence a prediction.
	careerTags := map[string]bool{}
	for _, career := range domain.Careers {
		for _, tag := range career.Tags {
			careerTags[tag] = true
		}
	}
	for _, q := range questions {
		assert.True(t, careerTags[q.Tag], "tag %q has no career", q.Tag)
	}
}

func TestPredictScoring(t *testing.T) {
	uc := usecase.NewCareerUsecase()

	t.Run("Sums per-tag yes counts over career tags", func(t *testing.T) {
		matches := uc.Predict(map[string]int{"technical": 1, "software": 1, "analytical": 1})

		assert.Equal(t, "Software Engineer", matches[0].Career.Name)
		assert.Equal(t, 3, matches[0].MatchCount)
		assert.Equal(t, "Data Scientist", matches[1].Career.Name)
		assert.Equal(t, 2, matches[1].MatchCount)
	})

	t.Run("Counts above one are summed, not clamped", func(t *testing.T) {
		matches := uc.Predict(map[string]int{"creative": 2})

		assert.Equal(t, "Graphic Designer", matches[0].Career.Name)
		assert.Equal(t, 2, matches[0].MatchCount)
	})

	t.Run("Ties resolve to catalog declaration order", func(t *testing.T) {
		// Teacher (teaching, social) and Doctor (science, social, teaching)
		// both score 2; Teacher is declared first in the catalog.
		matches := uc.Predict(map[string]int{"teaching": 1, "social": 1})

		assert.Equal(t, "Teacher", matches[0].Career.Name)
		assert.Equal(t, 2, matches[0].MatchCount)
		assert.Equal(t, "Doctor", matches[1].Career.Name)
		assert.Equal(t, 2, matches[1].MatchCount)
	})

	t.Run("Returns exactly five entries sorted descending", func(t *testing.T) {
		answers := map[string]int{}
		for _, q := range uc.Questions() {
			answers[q.Tag] = 1
		}
		matches := uc.Predict(answers)

		assert.Len(t, matches, 5)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].MatchCount, matches[i].MatchCount)
		}
	})

	t.Run("Is idempotent", func(t *testing.T) {
		answers := map[string]int{"science": 1, "social": 1, "law": 1}
		first := uc.Predict(answers)
		second := uc.Predict(answers)
		assert.Equal(t, first, second)
	})

	t.Run("Zero answers rank everything at zero in catalog order", func(t *testing.T) {
		matches := uc.Predict(map[string]int{})

		assert.Len(t, matches, 5)
		assert.Equal(t, "Software Engineer", matches[0].Career.Name)
		assert.Equal(t, 0, matches[0].MatchCount)
	})
}

func TestPredictLinks(t *testing.T) {
	uc := usecase.NewCareerUsecase()

	matches := uc.Predict(map[string]int{"technical": 1, "software": 1, "analytical": 1})
	top := matches[0]

	assert.Equal(t, "Software Engineer", top.Career.Name)
	// Spaces must be percent-encoded as %20, never '+'.
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=Software%20Engineer", top.SearchURL)
	assert.Equal(t, "https://www.youtube.com/results?search_query=Software%20Engineer%20career", top.VideoURL)
}

func TestCareerByName(t *testing.T) {
	uc := usecase.NewCareerUsecase()

	doctor, ok := uc.CareerByName("Doctor")
	assert.True(t, ok)
	assert.Equal(t, "MBBS, MD/MS", doctor.Qualification)
	assert.Equal(t, "₹6-25 LPA", doctor.Salary)

	_, ok = uc.CareerByName("Astronaut")
	assert.False(t, ok)
}

func TestChecklistAndSteps(t *testing.T) {
	uc := usecase.NewCareerUsecase()

	assert.Equal(t, []string{
		"Completed course",
		"Built a project",
		"Updated resume",
		"Mock interview",
	}, uc.ChecklistItems())
	assert.Len(t, uc.SuggestedSteps(), 5)
}
