package user_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Log      []logEntryDocument `bson:"log"`
}

type logEntryDocument struct {
	Description string    `bson:"description"`
	Duration    float64   `bson:"duration"`
	Date        time.Time `bson:"date"`
}

type MongoUserRepository struct {
	Collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{
		Collection: db.Collection(usersCollection),
	}
}

// EnsureMongoIndexes creates the unique username index. Safe to call on
// every start.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	return err
}

func (m *MongoUserRepository) CreateUser(ctx context.Context, username string) (*entity.User, error) {
	doc := userDocument{
		Username: username,
		Log:      []logEntryDocument{},
	}

	res, err := m.Collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("username already taken")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	doc.ID = id

	return doc.toEntity(false), nil
}

func (m *MongoUserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "log", Value: 0}}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *doc.toEntity(false))
	}
	return users, nil
}

func (m *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("unknown user id")
	}

	return m.findOne(ctx, bson.D{{Key: "_id", Value: objectID}}, true, "unknown user id")
}

func (m *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.findOne(ctx, bson.D{{Key: "username", Value: username}}, false, "unknown username")
}

func (m *MongoUserRepository) AppendLogEntry(ctx context.Context, id string, entry entity.LogEntry) (*entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("unknown user id")
	}

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "log", Value: logEntryDocument{
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
	}}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err = m.Collection.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: objectID}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("unknown user id")
		}
		return nil, fmt.Errorf("append log entry: %w", err)
	}

	return doc.toEntity(true), nil
}

func (m *MongoUserRepository) findOne(ctx context.Context, filter bson.D, withLog bool, notFound string) (*entity.User, error) {
	opts := options.FindOne()
	if !withLog {
		opts.SetProjection(bson.D{{Key: "log", Value: 0}})
	}

	var doc userDocument
	if err := m.Collection.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound(notFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return doc.toEntity(withLog), nil
}

func (d userDocument) toEntity(withLog bool) *entity.User {
	user := &entity.User{
		ID:       d.ID.Hex(),
		Username: d.Username,
	}
	if withLog {
		user.Log = make([]entity.LogEntry, 0, len(d.Log))
		for _, e := range d.Log {
			user.Log = append(user.Log, entity.LogEntry{
				Description: e.Description,
				Duration:    e.Duration,
				Date:        e.Date.UTC(),
			})
		}
	}
	return user
}
