package webresponse

import "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"

type JSONResponse struct {
	Error     bool                       `json:"error"`
	Message   string                     `json:"message"`
	ErrorList []data.ValidationErrorData `json:"error_list,omitempty"`
}
