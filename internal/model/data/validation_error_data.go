package data

type ValidationErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
