package webrequest

import (
	"strings"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

const maxUsernameLength = 64

type CreateUserRequest struct {
	Username string `json:"username"`
}

func (r CreateUserRequest) GetUsername() string {
	return strings.TrimSpace(r.Username)
}

func (r CreateUserRequest) Validate() []data.ValidationErrorData {
	r.Username = r.GetUsername()
	return helper.ValidateStruct(map[string]string{
		"username": "Username",
	}, &r,
		helper.Field(&r.Username, ozzo.Required, ozzo.Length(1, maxUsernameLength)),
	)
}
