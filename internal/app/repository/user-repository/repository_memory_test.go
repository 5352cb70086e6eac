package user_repository

import (
	"context"
	"testing"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAndList(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	alice, err := repo.CreateUser(ctx, "alice")
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestMemoryDuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "alice")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemoryAppendKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice")
	require.NoError(t, err)

	march := entity.LogEntry{Description: "swim", Duration: 20, Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)}
	january := entity.LogEntry{Description: "run", Duration: 30, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}

	_, err = repo.AppendLogEntry(ctx, user.ID, march)
	require.NoError(t, err)
	updated, err := repo.AppendLogEntry(ctx, user.ID, january)
	require.NoError(t, err)

	assert.Equal(t, []entity.LogEntry{march, january}, updated.Log)

	fetched, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Log, fetched.Log)

	// returned users are copies
	fetched.Log[0].Description = "changed"
	again, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "swim", again.Log[0].Description)
}

func TestMemoryNotFound(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = repo.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = repo.AppendLogEntry(ctx, "missing", entity.LogEntry{Description: "run", Duration: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestMemoryGetUserByUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "alice")
	require.NoError(t, err)

	found, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Nil(t, found.Log)
}
