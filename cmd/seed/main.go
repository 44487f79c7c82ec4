package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"lawpoint/internal/platform/logger"
	"lawpoint/internal/platform/mongodb"
)

type sampleLawyer struct {
	Name      string    `bson:"name"`
	Specialty string    `bson:"specialty"`
	Location  string    `bson:"location"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Seed only fills an empty collection; re-running against live data is a
// no-op, never a wipe.
func main() {
	log := logger.New()
	_ = godotenv.Load()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/lawpoint"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, uri)
	if err != nil {
		log.Error("could not connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	collection := client.Database("lawpoint").Collection("lawyers")

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Error("count failed", "error", err)
		os.Exit(1)
	}
	if count > 0 {
		log.Info("database already has data, skipping seed", "existing", count)
		return
	}

	now := time.Now().UTC()
	samples := []any{
		sampleLawyer{Name: "Alice Johnson", Specialty: "Family Law", Location: "New York", CreatedAt: now, UpdatedAt: now},
		sampleLawyer{Name: "Bob Smith", Specialty: "Criminal Defense", Location: "Los Angeles", CreatedAt: now, UpdatedAt: now},
		sampleLawyer{Name: "Carol White", Specialty: "Corporate Law", Location: "Chicago", CreatedAt: now, UpdatedAt: now},
		sampleLawyer{Name: "David Brown", Specialty: "Immigration Law", Location: "Houston", CreatedAt: now, UpdatedAt: now},
		sampleLawyer{Name: "Emma Davis", Specialty: "Intellectual Property", Location: "San Francisco", CreatedAt: now, UpdatedAt: now},
	}

	if _, err := collection.InsertMany(ctx, samples); err != nil {
		log.Error("seed insert failed", "error", err)
		os.Exit(1)
	}

	log.Info("seed complete", "inserted", len(samples))
}
