package exercise_handler

import "github.com/gin-gonic/gin"

type ExerciseHandler interface {
	CreateExercise(c *gin.Context)
	GetLog(c *gin.Context)
}
