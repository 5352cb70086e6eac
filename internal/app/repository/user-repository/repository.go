package user_repository

import (
	"context"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"
)

// UserRepository is the user store. Lookups that match nothing return an
// error wrapping apperror.ErrNotFound; a taken username on CreateUser returns
// one wrapping apperror.ErrConflict.
type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*entity.User, error)
	// GetUsers lists users in creation order without their logs.
	GetUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername does not load the log.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// AppendLogEntry appends to the user's log and returns the updated user.
	AppendLogEntry(ctx context.Context, id string, entry entity.LogEntry) (*entity.User, error)
}
