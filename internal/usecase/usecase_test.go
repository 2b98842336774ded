package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/internal/usecase"
	"go-futurejob-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, username string, upd *domain.ProfileUpdate) error {
	return m.Called(ctx, username, upd).Error(0)
}

func authedCtx(username string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUsername, username)
}

func TestRegister(t *testing.T) {
	validate := validator.New()

	t.Run("Should create a profile with empty goal, progress and timeline", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.UserProfile")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.UserProfile)
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "p1", u.Password)
			assert.Nil(t, u.GoalJob)
			assert.Empty(t, u.GoalHistory)
			assert.Empty(t, u.Progress)
			assert.Empty(t, u.Timeline)
		})

		err := uc.Register(context.Background(), "alice", "p1")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should surface duplicate username as conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("Username already exists"))

		err := uc.Register(context.Background(), "alice", "p2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should reject empty credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		err := uc.Register(context.Background(), "", "p1")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthenticate(t *testing.T) {
	validate := validator.New()
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, validate)

	bob := &domain.UserProfile{Username: "bob", Password: "secret"}
	mockRepo.On("GetByUsername", mock.Anything, "bob").Return(bob, nil)
	mockRepo.On("GetByUsername", mock.Anything, "carol").Return(nil, nil)

	t.Run("Exact password matches", func(t *testing.T) {
		ok, err := uc.Authenticate(context.Background(), "bob", "secret")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Comparison is case-sensitive", func(t *testing.T) {
		ok, err := uc.Authenticate(context.Background(), "bob", "Secret")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unknown user is false, not an error", func(t *testing.T) {
		ok, err := uc.Authenticate(context.Background(), "carol", "x")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProfileOwnership(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

	t.Run("Should fail when context user does not match target user", func(t *testing.T) {
		_, err := uc.GetProfile(authedCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only modify your own profile")
	})

	t.Run("Should fail safely when context user is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestGetProfileSafeDefault(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

	mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

	profile, err := uc.GetProfile(authedCtx("ghost"), "ghost")
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "ghost", profile.Username)
	assert.Nil(t, profile.GoalJob)
	assert.Empty(t, profile.Progress)
	assert.Empty(t, profile.Timeline)
}

func TestSetGoal(t *testing.T) {
	t.Run("Should reject careers outside the catalog", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		err := uc.SetGoal(authedCtx("bob"), "bob", "Astronaut")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown career")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should store a catalog career as the goal", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		mockRepo.On("Update", mock.Anything, "bob", mock.AnythingOfType("*domain.ProfileUpdate")).Return(nil).Run(func(args mock.Arguments) {
			upd := args.Get(2).(*domain.ProfileUpdate)
			if assert.NotNil(t, upd.GoalJob) {
				assert.Equal(t, "Doctor", *upd.GoalJob)
			}
			assert.False(t, upd.ClearGoal)
			assert.Nil(t, upd.Progress)
			assert.Nil(t, upd.Timeline)
		})

		err := uc.SetGoal(authedCtx("bob"), "bob", "Doctor")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ClearGoal resets the goal only", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		mockRepo.On("Update", mock.Anything, "bob", mock.AnythingOfType("*domain.ProfileUpdate")).Return(nil).Run(func(args mock.Arguments) {
			upd := args.Get(2).(*domain.ProfileUpdate)
			assert.True(t, upd.ClearGoal)
			assert.Nil(t, upd.Progress)
			assert.Nil(t, upd.Timeline)
		})

		err := uc.ClearGoal(authedCtx("bob"), "bob")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestSaveProgress(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

	// Unknown keys pass through untouched: the map is replaced wholesale,
	// never filtered against the fixed checklist.
	progress := map[string]bool{"Completed course": true, "Custom milestone": true}

	mockRepo.On("Update", mock.Anything, "bob", mock.AnythingOfType("*domain.ProfileUpdate")).Return(nil).Run(func(args mock.Arguments) {
		upd := args.Get(2).(*domain.ProfileUpdate)
		assert.Equal(t, progress, upd.Progress)
		assert.Nil(t, upd.Timeline)
		assert.Nil(t, upd.GoalJob)
	})

	err := uc.SaveProgress(authedCtx("bob"), "bob", progress)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAddTimelineEntry(t *testing.T) {
	t.Run("Appends a dated entry without touching other fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		existing := &domain.UserProfile{
			Username: "bob",
			Password: "secret",
			Progress: map[string]bool{"Completed course": true},
			Timeline: []string{"2024-01-01: started"},
		}
		mockRepo.On("GetByUsername", mock.Anything, "bob").Return(existing, nil)

		today := time.Now().Format("2006-01-02")
		mockRepo.On("Update", mock.Anything, "bob", mock.AnythingOfType("*domain.ProfileUpdate")).Return(nil).Run(func(args mock.Arguments) {
			upd := args.Get(2).(*domain.ProfileUpdate)
			if assert.Len(t, upd.Timeline, 2) {
				assert.Equal(t, "2024-01-01: started", upd.Timeline[0])
				assert.Equal(t, today+": passed the mock interview", upd.Timeline[1])
			}
			assert.Nil(t, upd.Progress)
			assert.Nil(t, upd.GoalJob)
		})

		profile, err := uc.AddTimelineEntry(authedCtx("bob"), "bob", "passed the mock interview")
		assert.NoError(t, err)
		assert.Len(t, profile.Timeline, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects empty notes", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		_, err := uc.AddTimelineEntry(authedCtx("bob"), "bob", "")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Unknown user is an error on update", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, usecase.NewCareerUsecase())

		mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.AddTimelineEntry(authedCtx("ghost"), "ghost", "note")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
