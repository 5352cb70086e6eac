package user_service

import (
	"context"
	"errors"
	"testing"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	userRepository "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/repository/user-repository"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(userRepository.NewMemoryUserRepository())

	res, err := svc.CreateUser(context.Background(), webrequest.CreateUserRequest{Username: "  alice "})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.NotEmpty(t, res.ID)
}

func TestCreateUserTwice(t *testing.T) {
	svc := NewUserService(userRepository.NewMemoryUserRepository())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, webrequest.CreateUserRequest{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, webrequest.CreateUserRequest{Username: "alice"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUserMissingUsername(t *testing.T) {
	svc := NewUserService(userRepository.NewMemoryUserRepository())

	_, err := svc.CreateUser(context.Background(), webrequest.CreateUserRequest{})
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Fields[0].Field)
}

// racyRepository reports no existing user but loses the insert race.
type racyRepository struct {
	userRepository.UserRepository
	lookupErr error
	createErr error
}

func (r racyRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, r.lookupErr
}

func (r racyRepository) CreateUser(ctx context.Context, username string) (*entity.User, error) {
	return nil, r.createErr
}

func TestCreateUserStoreConflict(t *testing.T) {
	svc := NewUserService(racyRepository{
		lookupErr: apperror.NotFound("unknown username"),
		createErr: apperror.Conflict("username already taken"),
	})

	_, err := svc.CreateUser(context.Background(), webrequest.CreateUserRequest{Username: "alice"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestCreateUserLookupFailure(t *testing.T) {
	storeErr := errors.New("server selection timeout")
	svc := NewUserService(racyRepository{lookupErr: storeErr})

	_, err := svc.CreateUser(context.Background(), webrequest.CreateUserRequest{Username: "alice"})
	assert.ErrorIs(t, err, storeErr)
}

func TestGetUsersEmpty(t *testing.T) {
	svc := NewUserService(userRepository.NewMemoryUserRepository())

	users, err := svc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
