package usecase

import (
	"context"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, validate: validate}
}

type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (u *authUsecase) Register(ctx context.Context, username, password string) error {
	if err := u.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return apperror.BadRequest(err.Error())
	}

	// New profiles start with no goal and empty progress/timeline. The
	// password is stored as given; plaintext equality is the specified
	// authentication model.
	user := &domain.UserProfile{
		Username:    username,
		Password:    password,
		GoalJob:     nil,
		GoalHistory: []string{},
		Progress:    map[string]bool{},
		Timeline:    []string{},
	}
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	// Exact, case-sensitive comparison; no normalization.
	return user.Password == password, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, username string) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
