package user_service

import (
	"context"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webresponse"
)

type UserService interface {
	CreateUser(ctx context.Context, request webrequest.CreateUserRequest) (webresponse.UserResponse, error)
	GetUsers(ctx context.Context) ([]webresponse.UserResponse, error)
}
