package route

import (
	"net/http"
	"path/filepath"
	"time"

	exercise_handler "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/handler/exercise-handler"
	user_handler "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/handler/user-handler"
	user_repository "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/repository/user-repository"
	exercise_service "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/service/exercise-service"
	user_service "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/service/user-service"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/config"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(cfg config.Config, userRepo user_repository.UserRepository, location *time.Location) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.HTTPLogger(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	router.GET("/health", func(c *gin.Context) {
		helper.WriteJSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	index := filepath.Join(cfg.ViewsDir, "index.html")
	if cfg.ViewsDir != "" && helper.CheckIfFileExists(index) {
		router.GET("/", func(c *gin.Context) {
			c.File(index)
		})
	}
	if cfg.StaticDir != "" && helper.CheckIfFileExists(cfg.StaticDir) {
		router.Static("/public", cfg.StaticDir)
	}

	userService := user_service.NewUserService(userRepo)
	userHandler := user_handler.NewUserHandler(userService)

	exerciseService := exercise_service.NewExerciseService(userRepo, location)
	exerciseHandler := exercise_handler.NewExerciseHandler(exerciseService)

	userRoute := router.Group("/api/users")
	{
		userRoute.GET("", userHandler.GetUsers)
		userRoute.POST("", userHandler.CreateUser)
		userRoute.POST("/:_id/exercises", exerciseHandler.CreateExercise)
		userRoute.GET("/:_id/logs", exerciseHandler.GetLog)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        1 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = origins
	return c
}
