// Package jsonfile persists the user mapping as a single JSON object keyed by
// username, rewritten in full on every mutation. Every operation loads the
// file fresh; an absent file reads as an empty mapping.
//
// Known limitation: concurrent writers are not coordinated across processes.
// The load-mutate-save sequence is guarded by a mutex within one process, but
// a second process writing the same file is last-writer-wins. That matches the
// single interactive session this store is sized for; a multi-instance
// deployment needs the sqlite driver (or external locking) instead.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"
)

// storedProfile is the on-disk record; the username lives in the map key, as
// in the original users.json layout.
type storedProfile struct {
	Password    string          `json:"password"`
	GoalJob     *string         `json:"goal_job"`
	GoalHistory []string        `json:"goal_history"`
	Progress    map[string]bool `json:"progress"`
	Timeline    []string        `json:"timeline"`
}

type userRepo struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(path string) domain.UserRepository {
	return &userRepo{path: path}
}

func (r *userRepo) loadAll() (map[string]storedProfile, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]storedProfile{}, nil
		}
		return nil, apperror.Internal(err)
	}

	users := map[string]storedProfile{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (r *userRepo) saveAll(users map[string]storedProfile) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return apperror.Internal(err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll()
	if err != nil {
		return err
	}
	if _, exists := users[user.Username]; exists {
		return apperror.Conflict("Username already exists")
	}

	rec := storedProfile{
		Password:    user.Password,
		GoalJob:     user.GoalJob,
		GoalHistory: user.GoalHistory,
		Progress:    user.Progress,
		Timeline:    user.Timeline,
	}
	// Serialize empty collections as [] / {} rather than null so the file
	// round-trips exactly.
	if rec.GoalHistory == nil {
		rec.GoalHistory = []string{}
	}
	if rec.Progress == nil {
		rec.Progress = map[string]bool{}
	}
	if rec.Timeline == nil {
		rec.Timeline = []string{}
	}

	users[user.Username] = rec
	return r.saveAll(users)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	rec, exists := users[username]
	if !exists {
		return nil, nil
	}
	return toDomain(username, rec), nil
}

func (r *userRepo) Update(ctx context.Context, username string, upd *domain.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll()
	if err != nil {
		return err
	}
	rec, exists := users[username]
	if !exists {
		return apperror.NotFound("User not found")
	}

	applyUpdate(&rec, upd)
	users[username] = rec
	return r.saveAll(users)
}

// applyUpdate merges a partial update into a stored record. Present fields
// replace their counterpart wholesale; nested maps are not deep-merged.
func applyUpdate(rec *storedProfile, upd *domain.ProfileUpdate) {
	if upd.ClearGoal {
		rec.GoalJob = nil
	} else if upd.GoalJob != nil {
		goal := *upd.GoalJob
		rec.GoalJob = &goal
	}
	if upd.Progress != nil {
		rec.Progress = upd.Progress
	}
	if upd.Timeline != nil {
		rec.Timeline = upd.Timeline
	}
}

func toDomain(username string, rec storedProfile) *domain.UserProfile {
	return &domain.UserProfile{
		Username:    username,
		Password:    rec.Password,
		GoalJob:     rec.GoalJob,
		GoalHistory: rec.GoalHistory,
		Progress:    rec.Progress,
		Timeline:    rec.Timeline,
	}
}
