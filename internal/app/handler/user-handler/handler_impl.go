package user_handler

import (
	"net/http"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	user_service "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/service/user-service"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"

	"github.com/gin-gonic/gin"
)

type UserHandlerImpl struct {
	userService user_service.UserService
}

func (u *UserHandlerImpl) CreateUser(c *gin.Context) {
	var request webrequest.CreateUserRequest
	if err := helper.ReadJSON(c, &request); err != nil {
		helper.WriteError(c, apperror.BadRequest("Malformed request body"))
		return
	}

	response, err := u.userService.CreateUser(c.Request.Context(), request)
	if err != nil {
		helper.WriteError(c, err)
		return
	}

	helper.WriteJSON(c, http.StatusOK, response)
}

func (u *UserHandlerImpl) GetUsers(c *gin.Context) {
	response, err := u.userService.GetUsers(c.Request.Context())
	if err != nil {
		helper.WriteError(c, err)
		return
	}

	helper.WriteJSON(c, http.StatusOK, response)
}

func NewUserHandler(userService user_service.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}
