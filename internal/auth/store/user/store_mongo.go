package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lawpoint/internal/auth/models"
	"lawpoint/pkg/platform/sentinel"
)

// Mongo is the durable account store. The unique index on email, not the
// service-level pre-check, is the authority that closes the concurrent
// signup race.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Safe to call on every start.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Name         string             `bson:"name"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d userDoc) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
	}
}

func (s *Mongo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var doc userDoc
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		return models.User{}, classify(err)
	}
	return doc.toModel(), nil
}

func (s *Mongo) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Ids from the fallback era are not valid ObjectIDs; to this
		// backend they are simply absent.
		return models.User{}, sentinel.ErrNotFound
	}

	var doc userDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return models.User{}, classify(err)
	}
	return doc.toModel(), nil
}

func (s *Mongo) Insert(ctx context.Context, user models.User) (models.User, error) {
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return models.User{}, classify(err)
	}
	return doc.toModel(), nil
}

// classify maps driver failures onto store sentinels: a missing document is
// ErrNotFound, a unique index violation is ErrConflict, anything
// connection-shaped is ErrUnavailable so the dual-mode dispatcher can degrade,
// and the rest passes through.
func classify(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return sentinel.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return sentinel.ErrConflict
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	default:
		return err
	}
}
