package user_service

import (
	"context"
	"errors"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	userRepository "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/repository/user-repository"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/logger"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webresponse"
)

type UserServiceImpl struct {
	UserRepository userRepository.UserRepository
}

func (u *UserServiceImpl) CreateUser(ctx context.Context, request webrequest.CreateUserRequest) (webresponse.UserResponse, error) {
	if validate := request.Validate(); len(validate) != 0 {
		return webresponse.UserResponse{}, apperror.Validation("Please provide a username", validate)
	}
	username := request.GetUsername()

	// The store's unique index is the real guard; this check only gives the
	// common case a clean answer without a failed insert.
	existing, err := u.UserRepository.GetUserByUsername(ctx, username)
	if err == nil && existing != nil {
		return webresponse.UserResponse{}, apperror.Conflict("Username already taken, try another one")
	}
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return webresponse.UserResponse{}, err
	}

	user, err := u.UserRepository.CreateUser(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return webresponse.UserResponse{}, apperror.Conflict("Username already taken, try another one")
		}
		return webresponse.UserResponse{}, err
	}

	logger.AppLogger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user_created")

	return webresponse.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (u *UserServiceImpl) GetUsers(ctx context.Context) ([]webresponse.UserResponse, error) {
	users, err := u.UserRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]webresponse.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, webresponse.UserResponse{
			ID:       user.ID,
			Username: user.Username,
		})
	}
	return response, nil
}

func NewUserService(userRepository userRepository.UserRepository) UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}
