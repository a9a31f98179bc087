// ============================================================================
// backend/internal/mockdb/db.go
// In-process document database emulation over local persistence
// ============================================================================

package mockdb

import (
	"context"
	"log"
	"sync"

	"progresstrack/backend/internal/localstore"
	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// DB emulates a document database. The students collection is reconciled
// with the local persistence adapter; the courses collection is backed by
// an in-memory list only. DB is an explicit store object: open one per
// process (or per test case), inject it, close it when done.
type DB struct {
	conn  *Conn
	users *localstore.Users

	mu       sync.Mutex
	students []store.Document
	courses  []store.Document
}

var _ store.Database = (*DB)(nil)

// Open creates a DB over kv. The courses list is seeded with the sample
// catalog when empty, matching the first-access seeding the UI expects.
func Open(kv *localstore.KV, dbName string) *DB {
	db := &DB{
		conn:  NewConn(kv, dbName),
		users: localstore.NewUsers(kv),
	}
	for _, c := range shared.SampleCourses() {
		db.courses = append(db.courses, store.CourseToDocument(c))
	}
	return db
}

// Conn exposes the connection state manager for this DB.
func (db *DB) Conn() *Conn {
	return db.conn
}

// Collection returns the named collection. An auto-connect is attempted
// first, mirroring the original access path; its failure is advisory.
// Unknown names are served by a collection that matches nothing and
// accepts nothing.
func (db *DB) Collection(name string) store.Collection {
	if !db.conn.IsConnected() {
		if err := db.conn.Connect(); err != nil {
			log.Printf("Warning: error auto-connecting to database: %v", err)
		}
	}

	switch name {
	case "students":
		return &studentsCollection{db: db}
	case "courses":
		return &coursesCollection{db: db}
	default:
		return emptyCollection{}
	}
}

// SeedStudents replaces the in-memory students list. It exists for tests
// and seeding tools that need to exercise the in-memory fallback path
// without touching persistence.
func (db *DB) SeedStudents(docs []store.Document) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.students = cloneDocs(docs)
}

// SeedCourses replaces the in-memory courses list.
func (db *DB) SeedCourses(docs []store.Document) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.courses = cloneDocs(docs)
}

// Close releases the in-memory state. The persisted snapshot is already
// durable; a closed DB must not be reused.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.students = nil
	db.courses = nil
	return nil
}

// warnIfDisconnected emits the advisory not-connected warning. Operations
// proceed regardless; connection state never blocks reads or writes.
func (db *DB) warnIfDisconnected(source string) {
	if !db.conn.IsConnected() {
		log.Printf("Warning: not connected, using %s", source)
	}
}

// ============================================================================
// Document Cloning
// ============================================================================

// cloneDoc deep-copies a record so callers never alias internal state.
func cloneDoc(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		if k == "courses" {
			if entries, err := shared.GetDocSlice(v); err == nil {
				raw := make([]interface{}, 0, len(entries))
				for _, entry := range entries {
					copied := make(map[string]interface{}, len(entry))
					for ek, ev := range entry {
						copied[ek] = ev
					}
					raw = append(raw, copied)
				}
				out[k] = raw
				continue
			}
		}
		out[k] = v
	}
	return out
}

func cloneDocs(docs []store.Document) []store.Document {
	out := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, cloneDoc(doc))
	}
	return out
}

// ============================================================================
// Empty Collection
// ============================================================================

type emptyCollection struct{}

var _ store.Collection = emptyCollection{}

func (emptyCollection) Find(ctx context.Context) ([]store.Document, error) { return nil, nil }

func (emptyCollection) FindOne(ctx context.Context, filter store.Filter) (store.Document, error) {
	return nil, store.ErrNoDocuments
}

func (emptyCollection) InsertOne(ctx context.Context, doc store.Document) (*store.InsertOneResult, error) {
	return &store.InsertOneResult{}, nil
}

func (emptyCollection) InsertMany(ctx context.Context, docs []store.Document) (*store.InsertManyResult, error) {
	return &store.InsertManyResult{}, nil
}

func (emptyCollection) UpdateOne(ctx context.Context, filter store.Filter, update store.Update) (*store.UpdateResult, error) {
	return &store.UpdateResult{}, nil
}

func (emptyCollection) DeleteOne(ctx context.Context, filter store.Filter) (*store.DeleteResult, error) {
	return &store.DeleteResult{}, nil
}

func (emptyCollection) CountDocuments(ctx context.Context) (int64, error) { return 0, nil }
