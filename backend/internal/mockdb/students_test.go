package mockdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresstrack/backend/internal/localstore"
	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	kv, err := localstore.Open("")
	require.NoError(t, err)

	db := Open(kv, "students_data")
	db.Conn().SetConnectionString("mongodb://localhost:27017")
	require.NoError(t, db.Conn().Connect())

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func studentDoc(id, name, email string) store.Document {
	return store.Document{
		"id":              id,
		"name":            name,
		"email":           email,
		"password":        "password123",
		"overallProgress": 0,
		"courses":         []interface{}{},
	}
}

func TestStudentsInsertThenFindOne(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	result, err := students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "s1", result.InsertedID)

	byID, err := students.FindOne(ctx, store.ByID("s1"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe", byID["name"])

	byEmail, err := students.FindOne(ctx, store.ByEmail("john@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "s1", byEmail["id"])
}

func TestStudentsFindOneNoMatch(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")

	_, err := students.FindOne(context.Background(), store.ByID("nope"))
	assert.ErrorIs(t, err, store.ErrNoDocuments)
}

func TestStudentsCountEmptyIsZero(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")

	count, err := students.CountDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStudentsInsertRequiresID(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")

	_, err := students.InsertOne(context.Background(), store.Document{
		"name":  "No ID",
		"email": "noid@example.com",
	})
	assert.Error(t, err)
}

func TestStudentsInsertMany(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	result, err := students.InsertMany(ctx, []store.Document{
		studentDoc("s1", "John Doe", "john@example.com"),
		studentDoc("s2", "Jane Smith", "jane@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.InsertedCount)

	count, err := students.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStudentsUpdateSetFields(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	_, err := students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)

	result, err := students.UpdateOne(ctx, store.ByID("s1"),
		store.SetFields(map[string]interface{}{"overallProgress": 75}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)

	doc, err := students.FindOne(ctx, store.ByID("s1"))
	require.NoError(t, err)
	assert.Equal(t, 75, shared.GetIntOrDefault(doc["overallProgress"], -1))
}

func TestStudentsUpdatePushCourse(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	_, err := students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)

	entry := shared.CourseProgress{ID: "1", Name: "Intro to Web Development", Progress: 50}
	result, err := students.UpdateOne(ctx, store.ByID("s1"), store.PushCourse(entry))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	doc, err := students.FindOne(ctx, store.ByCourseID("1"))
	require.NoError(t, err)
	assert.Equal(t, "s1", doc["id"])

	courses, err := shared.GetDocSlice(doc["courses"])
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro to Web Development", courses[0]["name"])
}

func TestStudentsPushRequiresIDFilter(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	_, err := students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)

	entry := shared.CourseProgress{ID: "1", Name: "Intro to Web Development", Progress: 50}
	result, err := students.UpdateOne(ctx, store.ByEmail("john@example.com"), store.PushCourse(entry))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedCount)
}

func TestStudentsUpdateNoMatch(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")

	result, err := students.UpdateOne(context.Background(), store.ByID("nope"),
		store.SetFields(map[string]interface{}{"overallProgress": 10}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
}

func TestStudentsDeleteThenFind(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	_, err := students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)

	result, err := students.DeleteOne(ctx, store.ByID("s1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = students.FindOne(ctx, store.ByID("s1"))
	assert.ErrorIs(t, err, store.ErrNoDocuments)
}

func TestStudentsDeleteNoMatch(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")

	result, err := students.DeleteOne(context.Background(), store.ByID("nope"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}

func TestStudentsDeleteRejectsCourseFilter(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	doc := studentDoc("s1", "John Doe", "john@example.com")
	doc["courses"] = []interface{}{
		map[string]interface{}{"id": "1", "name": "Intro to Web Development", "progress": 40},
	}
	_, err := students.InsertOne(ctx, doc)
	require.NoError(t, err)

	result, err := students.DeleteOne(ctx, store.ByCourseID("1"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}

// Persisted records win over the in-memory list the moment any exist,
// even when they describe a disjoint set of students.
func TestStudentsPersistenceShadowsMemory(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	db.SeedStudents([]store.Document{studentDoc("mem1", "Memory Only", "mem@example.com")})

	docs, err := students.Find(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "mem1", docs[0]["id"])

	// Inserting one student makes persistence non-empty and authoritative.
	_, err = students.InsertOne(ctx, studentDoc("s1", "John Doe", "john@example.com"))
	require.NoError(t, err)

	docs, err = students.Find(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, shared.GetStringOrDefault(doc["id"], ""))
	}
	assert.NotContains(t, ids, "mem1")
	assert.Contains(t, ids, "s1")
}

// Records handed out by reads must not alias internal state.
func TestStudentsFindReturnsCopies(t *testing.T) {
	db := newTestDB(t)
	students := db.Collection("students")
	ctx := context.Background()

	db.SeedStudents([]store.Document{studentDoc("s1", "John Doe", "john@example.com")})

	docs, err := students.Find(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	docs[0]["name"] = "Mutated"

	again, err := students.FindOne(ctx, store.ByID("s1"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again["name"])
}

func TestUnknownCollectionMatchesNothing(t *testing.T) {
	db := newTestDB(t)
	missing := db.Collection("grades")
	ctx := context.Background()

	docs, err := missing.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = missing.FindOne(ctx, store.ByID("s1"))
	assert.ErrorIs(t, err, store.ErrNoDocuments)

	count, err := missing.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
