package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"lawpoint/pkg/platform/sentinel"
)

// MongoStore is the durable roster store backed by the lawyers collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("lawyers")}
}

type lawyerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Specialty string             `bson:"specialty,omitempty"`
	Location  string             `bson:"location,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d lawyerDoc) toModel() Lawyer {
	return Lawyer{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Specialty: d.Specialty,
		Location:  d.Location,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (s *MongoStore) List(ctx context.Context) ([]Lawyer, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, classifyMongoErr(err)
	}
	defer cursor.Close(ctx)

	var docs []lawyerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classifyMongoErr(err)
	}

	lawyers := make([]Lawyer, 0, len(docs))
	for _, doc := range docs {
		lawyers = append(lawyers, doc.toModel())
	}
	return lawyers, nil
}

func (s *MongoStore) Insert(ctx context.Context, lawyer Lawyer) (Lawyer, error) {
	now := time.Now().UTC()
	doc := lawyerDoc{
		ID:        primitive.NewObjectID(),
		Name:      lawyer.Name,
		Specialty: lawyer.Specialty,
		Location:  lawyer.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return Lawyer{}, classifyMongoErr(err)
	}
	return doc.toModel(), nil
}

func classifyMongoErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return sentinel.ErrNotFound
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	default:
		return err
	}
}
