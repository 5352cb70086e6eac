package exercise_handler

import (
	"net/http"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	exercise_service "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/service/exercise-service"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"

	"github.com/gin-gonic/gin"
)

const userIDParam = "_id"

type ExerciseHandlerImpl struct {
	exerciseService exercise_service.ExerciseService
}

func (e *ExerciseHandlerImpl) CreateExercise(c *gin.Context) {
	var request webrequest.CreateExerciseRequest
	if err := helper.ReadJSON(c, &request); err != nil {
		helper.WriteError(c, apperror.BadRequest("Malformed request body"))
		return
	}

	response, err := e.exerciseService.AddExercise(c.Request.Context(), c.Param(userIDParam), request)
	if err != nil {
		helper.WriteError(c, err)
		return
	}

	helper.WriteJSON(c, http.StatusOK, response)
}

func (e *ExerciseHandlerImpl) GetLog(c *gin.Context) {
	var request webrequest.LogQueryRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		helper.WriteError(c, apperror.BadRequest("Malformed query string"))
		return
	}

	response, err := e.exerciseService.GetLog(c.Request.Context(), c.Param(userIDParam), request)
	if err != nil {
		helper.WriteError(c, err)
		return
	}

	helper.WriteJSON(c, http.StatusOK, response)
}

func NewExerciseHandler(exerciseService exercise_service.ExerciseService) ExerciseHandler {
	return &ExerciseHandlerImpl{
		exerciseService: exerciseService,
	}
}
