package database

import (
	"context"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/config"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

func InitMongoDB(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(connectTimeout)

	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}

	logger.AppLogger.Info().Str("database", cfg.MongoDatabase).Msg("MongoDB connection established")

	return c, nil
}

func InitPostgresDB(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger:         logger.NewGormLogger(logger.AppLogger),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	logger.AppLogger.Info().Str("host", cfg.Postgres.Host).Msg("Postgres connection established")

	return db, nil
}
