// ============================================================================
// backend/internal/mockdb/students.go
// Students collection, reconciled with the local persistence adapter
// ============================================================================

package mockdb

import (
	"context"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// studentsCollection serves student records. Read-path policy: persisted
// records are authoritative whenever any exist; the in-memory list is
// consulted only when persistence yields zero records. A student present
// only in memory therefore becomes invisible the moment persistence gains
// even one unrelated record — callers accept that asymmetry.
type studentsCollection struct {
	db *DB
}

var _ store.Collection = (*studentsCollection)(nil)

// snapshot returns the authoritative record set for this call and whether
// it came from persistence.
func (c *studentsCollection) snapshot() ([]store.Document, bool) {
	persisted := c.db.users.ListUsers()
	if len(persisted) > 0 {
		return persisted, true
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	return cloneDocs(c.db.students), false
}

func (c *studentsCollection) Find(ctx context.Context) ([]store.Document, error) {
	c.db.warnIfDisconnected("local student data")

	docs, _ := c.snapshot()
	return docs, nil
}

func (c *studentsCollection) FindOne(ctx context.Context, filter store.Filter) (store.Document, error) {
	c.db.warnIfDisconnected("local student data")

	docs, _ := c.snapshot()
	for _, doc := range docs {
		if filter.Matches(doc) {
			return doc, nil
		}
	}
	return nil, store.ErrNoDocuments
}

func (c *studentsCollection) CountDocuments(ctx context.Context) (int64, error) {
	docs, _ := c.snapshot()
	return int64(len(docs)), nil
}

// InsertOne appends the record. No uniqueness check is performed:
// duplicate ids are accepted and cause first-match behavior on later
// keyed lookups. The record is mirrored into persistence.
func (c *studentsCollection) InsertOne(ctx context.Context, doc store.Document) (*store.InsertOneResult, error) {
	c.db.warnIfDisconnected("local student data")

	record := cloneDoc(doc)

	c.db.mu.Lock()
	c.db.students = append(c.db.students, record)
	c.db.mu.Unlock()

	if err := c.db.users.SaveUser(record); err != nil {
		return nil, err
	}

	id := shared.GetStringOrDefault(record["id"], "")
	return &store.InsertOneResult{InsertedID: id}, nil
}

func (c *studentsCollection) InsertMany(ctx context.Context, docs []store.Document) (*store.InsertManyResult, error) {
	for _, doc := range docs {
		if _, err := c.InsertOne(ctx, doc); err != nil {
			return nil, err
		}
	}
	return &store.InsertManyResult{InsertedCount: int64(len(docs))}, nil
}

// UpdateOne applies the update to the first record matching the filter in
// the authoritative record set. The updated record is written back to
// persistence and mirrored onto any in-memory record with the same id so
// the two representations do not diverge.
func (c *studentsCollection) UpdateOne(ctx context.Context, filter store.Filter, update store.Update) (*store.UpdateResult, error) {
	c.db.warnIfDisconnected("local student data")

	// A push is only meaningful against an id-keyed filter.
	if update.Kind == store.UpdatePush && filter.Kind != store.FilterByID {
		return &store.UpdateResult{}, nil
	}

	docs, fromPersistence := c.snapshot()
	idx := -1
	for i, doc := range docs {
		if filter.Matches(doc) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &store.UpdateResult{}, nil
	}

	record := docs[idx]
	if !update.Apply(record) {
		return &store.UpdateResult{}, nil
	}

	if err := c.db.users.SaveUser(record); err != nil {
		return nil, err
	}
	c.mirrorToMemory(record, fromPersistence, idx)

	return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// mirrorToMemory writes the updated record back into the in-memory list:
// in place when the snapshot came from memory, by id otherwise.
func (c *studentsCollection) mirrorToMemory(record store.Document, fromPersistence bool, idx int) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	if !fromPersistence {
		if idx < len(c.db.students) {
			c.db.students[idx] = cloneDoc(record)
		}
		return
	}

	id := shared.GetStringOrDefault(record["id"], "")
	for i, doc := range c.db.students {
		if shared.GetStringOrDefault(doc["id"], "") == id {
			c.db.students[i] = cloneDoc(record)
			return
		}
	}
}

// DeleteOne removes at most one record matching an id or email filter,
// from both persistence and the in-memory list.
func (c *studentsCollection) DeleteOne(ctx context.Context, filter store.Filter) (*store.DeleteResult, error) {
	c.db.warnIfDisconnected("local student data")

	if filter.Kind != store.FilterByID && filter.Kind != store.FilterByEmail {
		return &store.DeleteResult{}, nil
	}

	docs, _ := c.snapshot()
	var deletedID string
	found := false
	for _, doc := range docs {
		if filter.Matches(doc) {
			deletedID = shared.GetStringOrDefault(doc["id"], "")
			found = true
			break
		}
	}
	if !found {
		return &store.DeleteResult{}, nil
	}

	c.db.users.RemoveUser(deletedID)

	c.db.mu.Lock()
	for i, doc := range c.db.students {
		if filter.Matches(doc) {
			c.db.students = append(c.db.students[:i], c.db.students[i+1:]...)
			break
		}
	}
	c.db.mu.Unlock()

	return &store.DeleteResult{DeletedCount: 1}, nil
}
