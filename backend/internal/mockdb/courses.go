// ============================================================================
// backend/internal/mockdb/courses.go
// Courses collection, in-memory only
// ============================================================================

package mockdb

import (
	"context"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// coursesCollection serves course records from the in-memory list. Course
// records are not persisted across restarts; an empty list is re-seeded
// with the sample catalog at open.
type coursesCollection struct {
	db *DB
}

var _ store.Collection = (*coursesCollection)(nil)

func (c *coursesCollection) Find(ctx context.Context) ([]store.Document, error) {
	c.db.warnIfDisconnected("mock course data")

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	return cloneDocs(c.db.courses), nil
}

func (c *coursesCollection) FindOne(ctx context.Context, filter store.Filter) (store.Document, error) {
	c.db.warnIfDisconnected("mock course data")

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	for _, doc := range c.db.courses {
		if filter.Matches(doc) {
			return cloneDoc(doc), nil
		}
	}
	return nil, store.ErrNoDocuments
}

func (c *coursesCollection) CountDocuments(ctx context.Context) (int64, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	return int64(len(c.db.courses)), nil
}

func (c *coursesCollection) InsertOne(ctx context.Context, doc store.Document) (*store.InsertOneResult, error) {
	c.db.warnIfDisconnected("mock course data")

	record := cloneDoc(doc)

	c.db.mu.Lock()
	c.db.courses = append(c.db.courses, record)
	c.db.mu.Unlock()

	id := shared.GetStringOrDefault(record["id"], "")
	return &store.InsertOneResult{InsertedID: id}, nil
}

func (c *coursesCollection) InsertMany(ctx context.Context, docs []store.Document) (*store.InsertManyResult, error) {
	for _, doc := range docs {
		if _, err := c.InsertOne(ctx, doc); err != nil {
			return nil, err
		}
	}
	return &store.InsertManyResult{InsertedCount: int64(len(docs))}, nil
}

// UpdateOne applies a field merge to the first matching course. Pushes
// are a students-collection concept and match nothing here.
func (c *coursesCollection) UpdateOne(ctx context.Context, filter store.Filter, update store.Update) (*store.UpdateResult, error) {
	c.db.warnIfDisconnected("mock course data")

	if update.Kind != store.UpdateSet {
		return &store.UpdateResult{}, nil
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	for _, doc := range c.db.courses {
		if filter.Matches(doc) {
			update.Apply(doc)
			return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &store.UpdateResult{}, nil
}

func (c *coursesCollection) DeleteOne(ctx context.Context, filter store.Filter) (*store.DeleteResult, error) {
	c.db.warnIfDisconnected("mock course data")

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	for i, doc := range c.db.courses {
		if filter.Matches(doc) {
			c.db.courses = append(c.db.courses[:i], c.db.courses[i+1:]...)
			return &store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{}, nil
}
