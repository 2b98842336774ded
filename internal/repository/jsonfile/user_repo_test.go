package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/internal/repository/jsonfile"
	"go-futurejob-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (domain.UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return jsonfile.NewUserRepository(path), path
}

func newProfile(username, password string) *domain.UserProfile {
	return &domain.UserProfile{
		Username:    username,
		Password:    password,
		GoalHistory: []string{},
		Progress:    map[string]bool{},
		Timeline:    []string{},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent file reads as empty store", func(t *testing.T) {
		repo, _ := newRepo(t)

		user, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Duplicate username is a conflict and keeps the first password", func(t *testing.T) {
		repo, _ := newRepo(t)

		require.NoError(t, repo.Create(ctx, newProfile("alice", "p1")))

		err := repo.Create(ctx, newProfile("alice", "p2"))
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)

		stored, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "p1", stored.Password)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown user is an error", func(t *testing.T) {
		repo, _ := newRepo(t)

		err := repo.Update(ctx, "ghost", &domain.ProfileUpdate{ClearGoal: true})
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Present fields replace, absent fields survive", func(t *testing.T) {
		repo, _ := newRepo(t)
		require.NoError(t, repo.Create(ctx, newProfile("bob", "secret")))

		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{
			Timeline: []string{"2024-01-01: started"},
		}))
		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{
			Progress: map[string]bool{"Completed course": true},
		}))

		stored, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-01-01: started"}, stored.Timeline)
		assert.Equal(t, map[string]bool{"Completed course": true}, stored.Progress)
		assert.Equal(t, "secret", stored.Password)
	})

	t.Run("Progress replacement is wholesale, not a deep merge", func(t *testing.T) {
		repo, _ := newRepo(t)
		require.NoError(t, repo.Create(ctx, newProfile("bob", "secret")))

		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{
			Progress: map[string]bool{"Completed course": true, "Old item": true},
		}))
		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{
			Progress: map[string]bool{"Built a project": true},
		}))

		stored, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"Built a project": true}, stored.Progress)
	})

	t.Run("Goal set and clear", func(t *testing.T) {
		repo, _ := newRepo(t)
		require.NoError(t, repo.Create(ctx, newProfile("bob", "secret")))

		goal := "Doctor"
		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{GoalJob: &goal}))

		stored, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, stored.GoalJob)
		assert.Equal(t, "Doctor", *stored.GoalJob)

		require.NoError(t, repo.Update(ctx, "bob", &domain.ProfileUpdate{ClearGoal: true}))

		stored, err = repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, stored.GoalJob)
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	goal := "Software Engineer"
	require.NoError(t, repo.Create(ctx, newProfile("alice", "p1")))
	require.NoError(t, repo.Update(ctx, "alice", &domain.ProfileUpdate{
		GoalJob: &goal,
		// "Legacy item" is outside the fixed checklist; it must be preserved.
		Progress: map[string]bool{"Completed course": true, "Mock interview": false, "Legacy item": true},
		Timeline: []string{"2024-01-01: started", "2024-02-01: built a project"},
	}))

	// A fresh repository instance on the same file must reproduce every
	// field exactly, including the never-populated goal history.
	reloaded := jsonfile.NewUserRepository(path)
	stored, err := reloaded.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, "p1", stored.Password)
	require.NotNil(t, stored.GoalJob)
	assert.Equal(t, "Software Engineer", *stored.GoalJob)
	assert.Equal(t, []string{}, stored.GoalHistory)
	assert.Equal(t, map[string]bool{"Completed course": true, "Mock interview": false, "Legacy item": true}, stored.Progress)
	assert.Equal(t, []string{"2024-01-01: started", "2024-02-01: built a project"}, stored.Timeline)
}

func TestStorageUnavailable(t *testing.T) {
	ctx := context.Background()

	// A directory in place of the store file makes every read fail; the
	// error must surface instead of being swallowed as an empty store.
	dir := t.TempDir()
	repo := jsonfile.NewUserRepository(dir)

	_, err := repo.GetByUsername(ctx, "alice")
	require.Error(t, err)

	err = repo.Create(ctx, newProfile("alice", "p1"))
	require.Error(t, err)

	// Corrupt JSON also fails loudly.
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	broken := jsonfile.NewUserRepository(path)
	_, err = broken.GetByUsername(ctx, "alice")
	require.Error(t, err)
}
