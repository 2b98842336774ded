// Package sqlite is the embedded alternative to the jsonfile store: one row
// per username with atomic per-key updates, for deployments where the
// whole-file rewrite pattern is not acceptable.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"

	"modernc.org/sqlite"
)

// SQLite extended error code for a UNIQUE constraint violation.
const sqliteConstraintUnique = 2067

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	history, progress, timeline, err := encodeCollections(user.GoalHistory, user.Progress, user.Timeline)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO users (username, password, goal_job, goal_history, progress, timeline)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, user.Username, user.Password, user.GoalJob, history, progress, timeline)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return apperror.Conflict("Username already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	query := `SELECT username, password, goal_job, goal_history, progress, timeline
	          FROM users WHERE username = ?`

	var (
		user                        domain.UserProfile
		goalJob                     sql.NullString
		history, progress, timeline string
	)
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Password, &goalJob, &history, &progress, &timeline,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}

	if goalJob.Valid {
		user.GoalJob = &goalJob.String
	}
	if err := decodeCollections(history, progress, timeline, &user); err != nil {
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, username string, upd *domain.ProfileUpdate) error {
	// Read-modify-write inside a transaction keeps the per-key update atomic,
	// which the jsonfile driver cannot offer across processes.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback()

	var (
		goalJob                     sql.NullString
		history, progress, timeline string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT goal_job, goal_history, progress, timeline FROM users WHERE username = ?`,
		username,
	).Scan(&goalJob, &history, &progress, &timeline)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	var rec domain.UserProfile
	if goalJob.Valid {
		rec.GoalJob = &goalJob.String
	}
	if err := decodeCollections(history, progress, timeline, &rec); err != nil {
		return apperror.Internal(err)
	}

	if upd.ClearGoal {
		rec.GoalJob = nil
	} else if upd.GoalJob != nil {
		rec.GoalJob = upd.GoalJob
	}
	if upd.Progress != nil {
		rec.Progress = upd.Progress
	}
	if upd.Timeline != nil {
		rec.Timeline = upd.Timeline
	}

	newHistory, newProgress, newTimeline, err := encodeCollections(rec.GoalHistory, rec.Progress, rec.Timeline)
	if err != nil {
		return apperror.Internal(err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET goal_job = ?, goal_history = ?, progress = ?, timeline = ? WHERE username = ?`,
		rec.GoalJob, newHistory, newProgress, newTimeline, username,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func encodeCollections(history []string, progress map[string]bool, timeline []string) (string, string, string, error) {
	if history == nil {
		history = []string{}
	}
	if progress == nil {
		progress = map[string]bool{}
	}
	if timeline == nil {
		timeline = []string{}
	}

	h, err := json.Marshal(history)
	if err != nil {
		return "", "", "", err
	}
	p, err := json.Marshal(progress)
	if err != nil {
		return "", "", "", err
	}
	t, err := json.Marshal(timeline)
	if err != nil {
		return "", "", "", err
	}
	return string(h), string(p), string(t), nil
}

func decodeCollections(history, progress, timeline string, user *domain.UserProfile) error {
	if err := json.Unmarshal([]byte(history), &user.GoalHistory); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(progress), &user.Progress); err != nil {
		return err
	}
	return json.Unmarshal([]byte(timeline), &user.Timeline)
}
