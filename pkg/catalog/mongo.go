package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource loads catalogs from a MongoDB collection. It exists for
// deployments that keep the drug catalog in a shared database instead of a
// local JSON file; the resulting Catalog is identical either way.
type MongoSource struct {
	URI        string
	Database   string
	Collection string

	// ConnectTimeout bounds the initial connection. Zero means 10s.
	ConnectTimeout time.Duration
}

// Load connects to MongoDB, reads all records in natural (insertion) order,
// and returns them as a Catalog. The connection is closed before returning.
func (s *MongoSource) Load(ctx context.Context) (*Catalog, error) {
	timeout := s.ConnectTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(s.URI))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.URI, err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	coll := client.Database(s.Database).Collection(s.Collection)
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cur.Close(ctx)

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return New(records), nil
}
