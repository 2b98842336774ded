package domain

import (
	"context"
)

// UserProfile is the per-user record. Username is the unique key and is
// immutable after registration.
//
// Password is stored and compared as plaintext by specified behavior of the
// original application; this is not a security model.
//
// GoalHistory is persisted for file-format compatibility but is never
// populated or read by any operation.
type UserProfile struct {
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	GoalJob     *string         `json:"goal_job"`
	GoalHistory []string        `json:"goal_history"`
	Progress    map[string]bool `json:"progress"`
	Timeline    []string        `json:"timeline"`
}

// ProfileUpdate is an explicit partial update. Each present field fully
// replaces its counterpart on the stored record (shallow field-level
// overwrite): a non-nil Progress replaces the whole progress map, a non-nil
// Timeline replaces the whole timeline slice. GoalJob sets the goal;
// ClearGoal resets it to null.
type ProfileUpdate struct {
	GoalJob   *string
	ClearGoal bool
	Progress  map[string]bool
	Timeline  []string
}

type UserRepository interface {
	// Create persists a new profile. Returns apperror.Conflict if the
	// username is already registered.
	Create(ctx context.Context, user *UserProfile) error
	// GetByUsername returns the stored profile, or (nil, nil) when the
	// username is unknown.
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
	// Update applies a partial update to an existing profile. Returns
	// apperror.NotFound when the username does not exist; callers must only
	// update the currently authenticated user.
	Update(ctx context.Context, username string, upd *ProfileUpdate) error
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password string) error
	// Authenticate reports whether the username exists and its stored
	// password equals the given one exactly (case-sensitive). Bad
	// credentials are a false return, never an error.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	GetCurrentUser(ctx context.Context, username string) (*UserProfile, error)
}

type ProfileUsecase interface {
	// GetProfile returns the current record, or a zero-valued profile for an
	// unknown username. Callers rely on the safe empty default.
	GetProfile(ctx context.Context, username string) (*UserProfile, error)
	SetGoal(ctx context.Context, username, career string) error
	ClearGoal(ctx context.Context, username string) error
	// SaveProgress replaces the whole progress map. Unknown checklist keys
	// already present in the map are tolerated and preserved.
	SaveProgress(ctx context.Context, username string, progress map[string]bool) error
	// AddTimelineEntry appends a dated "YYYY-MM-DD: <note>" entry (newest
	// last) and returns the updated profile. Entries are immutable once
	// written; there is no edit or delete.
	AddTimelineEntry(ctx context.Context, username, note string) (*UserProfile, error)
}
