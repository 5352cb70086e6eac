package exercise_service

import (
	"context"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webresponse"
)

type ExerciseService interface {
	AddExercise(ctx context.Context, userID string, request webrequest.CreateExerciseRequest) (webresponse.ExerciseResponse, error)
	GetLog(ctx context.Context, userID string, request webrequest.LogQueryRequest) (webresponse.LogResponse, error)
}
