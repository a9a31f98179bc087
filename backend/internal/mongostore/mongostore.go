// ============================================================================
// backend/internal/mongostore/mongostore.go
// Real MongoDB backend for the collection contract
// ============================================================================

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

const queryTimeout = 10 * time.Second

// Database serves the collection contract from a real MongoDB deployment.
// It is the path the mock engine simulates; it is selected when a Mongo
// URI is configured.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Database = (*Database)(nil)

// Connect establishes the MongoDB connection and pings the primary.
func Connect(config *shared.MongoConfig) (*Database, error) {
	if config == nil || config.URI == "" {
		return nil, fmt.Errorf("mongo configuration with a URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize).
		SetMaxConnIdleTime(config.MaxIdleTime).
		SetServerSelectionTimeout(10 * time.Second).
		SetConnectTimeout(config.ConnectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("Successfully connected to MongoDB (database: %s)", config.Database)
	return &Database{client: client, db: client.Database(config.Database)}, nil
}

// Close gracefully closes the MongoDB connection.
func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// Collection returns the named collection.
func (d *Database) Collection(name string) store.Collection {
	return &collection{col: d.db.Collection(name)}
}

// IsConnected always reports true: a Database only exists after a
// successful dial and ping.
func (d *Database) IsConnected() bool { return true }

// ============================================================================
// Collection
// ============================================================================

type collection struct {
	col *mongo.Collection
}

var _ store.Collection = (*collection)(nil)

func (c *collection) Find(ctx context.Context) ([]store.Document, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := c.col.Find(queryCtx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}
	defer cursor.Close(queryCtx)

	var docs []store.Document
	for cursor.Next(queryCtx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Warning: error decoding document: %v", err)
			continue
		}
		docs = append(docs, normalizeDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

func (c *collection) FindOne(ctx context.Context, filter store.Filter) (store.Document, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc bson.M
	err := c.col.FindOne(queryCtx, filterToBSON(filter)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return normalizeDocument(doc), nil
}

func (c *collection) InsertOne(ctx context.Context, doc store.Document) (*store.InsertOneResult, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(queryCtx, bson.M(doc)); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return &store.InsertOneResult{InsertedID: shared.GetStringOrDefault(doc["id"], "")}, nil
}

func (c *collection) InsertMany(ctx context.Context, docs []store.Document) (*store.InsertManyResult, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	raw := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		raw = append(raw, bson.M(doc))
	}
	result, err := c.col.InsertMany(queryCtx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to insert documents: %w", err)
	}
	return &store.InsertManyResult{InsertedCount: int64(len(result.InsertedIDs))}, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter store.Filter, update store.Update) (*store.UpdateResult, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if update.Kind == store.UpdatePush && filter.Kind != store.FilterByID {
		return &store.UpdateResult{}, nil
	}

	result, err := c.col.UpdateOne(queryCtx, filterToBSON(filter), updateToBSON(update))
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if result.MatchedCount == 0 {
		return &store.UpdateResult{}, nil
	}
	return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter store.Filter) (*store.DeleteResult, error) {
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if filter.Kind != store.FilterByID && filter.Kind != store.FilterByEmail {
		return &store.DeleteResult{}, nil
	}

	result, err := c.col.DeleteOne(queryCtx, filterToBSON(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}
	return &store.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func (c *collection) CountDocuments(ctx context.Context) (int64, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := c.col.CountDocuments(queryCtx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// ============================================================================
// BSON Translation
// ============================================================================

// filterToBSON maps the tagged filter variants onto their query shapes.
// The embedded-course filter uses the dotted path match.
func filterToBSON(filter store.Filter) bson.M {
	switch filter.Kind {
	case store.FilterByID:
		return bson.M{"id": filter.Value}
	case store.FilterByEmail:
		return bson.M{"email": filter.Value}
	case store.FilterByCourseID:
		return bson.M{"courses.id": filter.Value}
	default:
		// Matches nothing.
		return bson.M{"id": bson.M{"$exists": false}}
	}
}

func updateToBSON(update store.Update) bson.M {
	switch update.Kind {
	case store.UpdatePush:
		return bson.M{"$push": bson.M{"courses": bson.M(store.CourseProgressToDocument(update.Course))}}
	default:
		return bson.M{"$set": bson.M(update.Fields)}
	}
}

// normalizeDocument converts decoded BSON containers (primitive.M,
// primitive.A) into the plain map/slice shapes the shared helpers expect,
// and drops Mongo's own _id.
func normalizeDocument(doc bson.M) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return map[string]interface{}(normalizeDocument(v))
	case primitive.A:
		raw := make([]interface{}, 0, len(v))
		for _, item := range v {
			raw = append(raw, normalizeValue(item))
		}
		return raw
	default:
		return value
	}
}
