package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	user_repository "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/repository/user-repository"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/config"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/database"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/logger"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/route"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Environment: ", cfg.AppEnv)

	if err := logger.Init(logger.Options{Level: cfg.LogLevel, ToFile: cfg.LogToFile}); err != nil {
		fmt.Printf("Error initializing log files: %v\n", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	location, err := cfg.Location()
	if err != nil {
		logger.AppLogger.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("Invalid timezone")
	}

	userRepo, closeStore, err := initUserRepository(context.Background(), cfg)
	if err != nil {
		logger.AppLogger.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Failed to initialize user store")
	}
	defer closeStore()

	router := route.InitRoutes(cfg, userRepo, location)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.AppLogger.Fatal().Err(err).Msg("Error starting server")
		}
	}()

	logger.AppLogger.Info().Str("port", cfg.Port).Str("driver", cfg.StoreDriver).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.AppLogger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.AppLogger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.AppLogger.Info().Msg("Server exited gracefully")
}

// initUserRepository opens the configured store. The returned func releases
// its connections.
func initUserRepository(ctx context.Context, cfg config.Config) (user_repository.UserRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.InitPostgresDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := user_repository.MigratePostgres(db); err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return user_repository.NewPostgresUserRepository(db), closeFn, nil

	case config.DriverMemory:
		logger.AppLogger.Warn().Msg("Using in-memory user store, data is lost on restart")
		return user_repository.NewMemoryUserRepository(), func() {}, nil

	default:
		client, err := database.InitMongoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := user_repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		closeFn := func() {
			_ = client.Disconnect(context.Background())
		}
		return user_repository.NewMongoUserRepository(db), closeFn, nil
	}
}
