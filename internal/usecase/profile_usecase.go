package usecase

import (
	"context"
	"fmt"
	"time"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	careers  domain.CareerUsecase
}

func NewProfileUsecase(userRepo domain.UserRepository, careers domain.CareerUsecase) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		careers:  careers,
	}
}

// requireOwner verifies the context user matches the target username.
// Every profile operation is scoped to the authenticated user.
func requireOwner(ctx context.Context, username string) error {
	ctxUsername, ok := ctx.Value(domain.KeyUsername).(string)
	if !ok || ctxUsername == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUsername != username {
		return apperror.Forbidden("You can only modify your own profile")
	}
	return nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	if err := requireOwner(ctx, username); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Safe empty default for a missing user; never an error.
		return &domain.UserProfile{Username: username}, nil
	}
	return user, nil
}

func (u *profileUsecase) SetGoal(ctx context.Context, username, career string) error {
	if err := requireOwner(ctx, username); err != nil {
		return err
	}
	if _, ok := u.careers.CareerByName(career); !ok {
		return apperror.BadRequest("Unknown career: " + career)
	}
	return u.userRepo.Update(ctx, username, &domain.ProfileUpdate{GoalJob: &career})
}

func (u *profileUsecase) ClearGoal(ctx context.Context, username string) error {
	if err := requireOwner(ctx, username); err != nil {
		return err
	}
	return u.userRepo.Update(ctx, username, &domain.ProfileUpdate{ClearGoal: true})
}

func (u *profileUsecase) SaveProgress(ctx context.Context, username string, progress map[string]bool) error {
	if err := requireOwner(ctx, username); err != nil {
		return err
	}
	if progress == nil {
		progress = map[string]bool{}
	}
	// The whole map is replaced; keys outside the fixed checklist are kept
	// as-is rather than rejected.
	return u.userRepo.Update(ctx, username, &domain.ProfileUpdate{Progress: progress})
}

func (u *profileUsecase) AddTimelineEntry(ctx context.Context, username, note string) (*domain.UserProfile, error) {
	if err := requireOwner(ctx, username); err != nil {
		return nil, err
	}
	if note == "" {
		return nil, apperror.BadRequest("Timeline note must not be empty")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	entry := fmt.Sprintf("%s: %s", time.Now().Format("2006-01-02"), note)
	timeline := append(user.Timeline, entry)
	if err := u.userRepo.Update(ctx, username, &domain.ProfileUpdate{Timeline: timeline}); err != nil {
		return nil, err
	}

	user.Timeline = timeline
	return user, nil
}
