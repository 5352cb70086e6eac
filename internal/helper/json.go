package helper

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webresponse"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxMultipartMemory = 1 << 20

func ReadJSONFromByte(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	return decoder.Decode(out)
}

// ReadJSON decodes the request body into out. HTML forms post
// urlencoded or multipart bodies, so those are flattened into a JSON object
// of string values first and decoded through the same struct tags.
func ReadJSON(c *gin.Context, out any) error {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return readFormAsJSON(c, out)
	}
	return readPlainJSON(c, out)
}

func readPlainJSON(c *gin.Context, out any) error {
	if c.Request.Body == nil {
		return nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	defer c.Request.Body.Close()

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	return json.Unmarshal(body, out)
}

func readFormAsJSON(c *gin.Context, out any) error {
	var err error
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		err = c.Request.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		return err
	}

	values := make(map[string]string, len(c.Request.PostForm))
	for key, v := range c.Request.PostForm {
		if len(v) > 0 {
			values[key] = v[0]
		}
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}

	return ReadJSONFromByte(encoded, out)
}

func WriteJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteError maps classified errors onto status codes. Anything unclassified
// is reported as a 500 with a generic message; the cause is attached to the
// gin context so the request logger records it.
func WriteError(c *gin.Context, err error) {
	_ = c.Error(err)

	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSON(c, http.StatusUnprocessableEntity, webresponse.JSONResponse{
			Error:     true,
			Message:   validationErr.Message,
			ErrorList: validationErr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
	}

	message := "Something went wrong, please try again later"
	var appErr *apperror.Error
	if status != http.StatusInternalServerError && errors.As(err, &appErr) {
		message = appErr.Message
	}

	WriteJSON(c, status, webresponse.JSONResponse{
		Error:   true,
		Message: message,
	})
}
