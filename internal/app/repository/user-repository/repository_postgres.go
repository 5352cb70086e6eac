package user_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

// exerciseRecord.ID is a serial, so ordering by it gives insertion order.
type exerciseRecord struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      string    `gorm:"type:varchar(36);index;not null"`
	Description string    `gorm:"not null"`
	Duration    float64   `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`

	User *userRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (exerciseRecord) TableName() string { return "exercises" }

type PostgresUserRepository struct {
	DB *gorm.DB
}

// NewPostgresUserRepository expects db to be opened with TranslateError so
// unique violations come back as gorm.ErrDuplicatedKey.
func NewPostgresUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{
		DB: db,
	}
}

func MigratePostgres(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &exerciseRecord{})
}

func (p *PostgresUserRepository) CreateUser(ctx context.Context, username string) (*entity.User, error) {
	record := userRecord{
		ID:       helper.GenerateUID(),
		Username: username,
	}

	if err := p.DB.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("username already taken")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &entity.User{ID: record.ID, Username: record.Username}, nil
}

func (p *PostgresUserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	var records []userRecord
	if err := p.DB.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := make([]entity.User, 0, len(records))
	for _, r := range records {
		users = append(users, entity.User{ID: r.ID, Username: r.Username})
	}
	return users, nil
}

func (p *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	db := p.DB.WithContext(ctx)
	record, err := firstUser(db, "id = ?", id, "unknown user id")
	if err != nil {
		return nil, err
	}

	return userWithLog(db, record)
}

func (p *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	record, err := firstUser(p.DB.WithContext(ctx), "username = ?", username, "unknown username")
	if err != nil {
		return nil, err
	}

	return &entity.User{ID: record.ID, Username: record.Username}, nil
}

// AppendLogEntry holds a share lock on the user row until the insert commits,
// so the user cannot disappear between the lookup and the append.
func (p *PostgresUserRepository) AppendLogEntry(ctx context.Context, id string, entry entity.LogEntry) (*entity.User, error) {
	var user *entity.User
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := firstUser(tx.Clauses(clause.Locking{Strength: "SHARE"}), "id = ?", id, "unknown user id")
		if err != nil {
			return err
		}

		exercise := exerciseRecord{
			UserID:      record.ID,
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        entry.Date,
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}

		user, err = userWithLog(tx, record)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func firstUser(db *gorm.DB, query string, arg string, notFound string) (*userRecord, error) {
	var record userRecord
	if err := db.Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(notFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &record, nil
}

func userWithLog(db *gorm.DB, record *userRecord) (*entity.User, error) {
	var exercises []exerciseRecord
	if err := db.Where("user_id = ?", record.ID).Order("id").Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	user := &entity.User{
		ID:       record.ID,
		Username: record.Username,
		Log:      make([]entity.LogEntry, 0, len(exercises)),
	}
	for _, e := range exercises {
		user.Log = append(user.Log, entity.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        helper.DateOnly(e.Date),
		})
	}
	return user, nil
}
