// ============================================================================
// backend/internal/store/store.go
// Collection contract shared by the mock engine and the MongoDB backend
// ============================================================================

package store

import (
	"context"
	"errors"

	"progresstrack/backend/internal/shared"
)

// Document is a single untyped collection record. Field values follow
// JSON decoding conventions (numbers may arrive as float64); callers
// extract them through the shared conversion helpers.
type Document = map[string]interface{}

// ErrNoDocuments is returned by FindOne when no record matches the filter.
var ErrNoDocuments = errors.New("no documents in result")

// ============================================================================
// Result Structs
// ============================================================================

// InsertOneResult reports the outcome of an InsertOne call.
type InsertOneResult struct {
	InsertedID string
}

// InsertManyResult reports the outcome of an InsertMany call.
type InsertManyResult struct {
	InsertedCount int64
}

// UpdateResult reports the outcome of an UpdateOne call. MatchedCount and
// ModifiedCount are both 0 or both 1; partial application is never reported.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports the outcome of a DeleteOne call.
type DeleteResult struct {
	DeletedCount int64
}

// ============================================================================
// Interfaces
// ============================================================================

// Collection is the uniform method set every entity collection presents.
// Operations take a context but perform synchronous in-memory work in the
// mock engine; only the MongoDB backend actually blocks.
type Collection interface {
	Find(ctx context.Context) ([]Document, error)
	FindOne(ctx context.Context, filter Filter) (Document, error)
	InsertOne(ctx context.Context, doc Document) (*InsertOneResult, error)
	InsertMany(ctx context.Context, docs []Document) (*InsertManyResult, error)
	UpdateOne(ctx context.Context, filter Filter, update Update) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (*DeleteResult, error)
	CountDocuments(ctx context.Context) (int64, error)
}

// Database hands out collections by name. Unknown names yield a valid
// collection that matches nothing and accepts nothing.
type Database interface {
	Collection(name string) Collection
}

// ConnectionStatus reports whether a remote connection is established.
// It is advisory only: collection operations never consult it to block
// themselves.
type ConnectionStatus interface {
	IsConnected() bool
}

// ============================================================================
// Document <-> Model Conversion
// ============================================================================

// StudentToDocument converts a typed student into its record form.
func StudentToDocument(s shared.Student) Document {
	courses := make([]interface{}, 0, len(s.Courses))
	for _, c := range s.Courses {
		courses = append(courses, CourseProgressToDocument(c))
	}
	return Document{
		"id":              s.ID,
		"name":            s.Name,
		"email":           s.Email,
		"password":        s.Password,
		"overallProgress": s.OverallProgress,
		"courses":         courses,
	}
}

// CourseProgressToDocument converts one embedded course-progress entry.
func CourseProgressToDocument(c shared.CourseProgress) Document {
	return Document{
		"id":       c.ID,
		"name":     c.Name,
		"progress": c.Progress,
	}
}

// CourseToDocument converts a typed course into its record form.
func CourseToDocument(c shared.Course) Document {
	return Document{
		"id":              c.ID,
		"name":            c.Name,
		"description":     c.Description,
		"prerequisites":   c.Prerequisites,
		"estimatedTime":   c.EstimatedTime,
		"studentsCount":   c.StudentsCount,
		"averageProgress": c.AverageProgress,
	}
}

// DocumentToStudent converts a record into a typed student, defaulting
// optional fields so older or partial records remain usable.
func DocumentToStudent(doc Document) (shared.Student, error) {
	id, err := shared.GetString(doc["id"])
	if err != nil {
		return shared.Student{}, errors.New("missing or invalid id field")
	}
	name, err := shared.GetString(doc["name"])
	if err != nil {
		return shared.Student{}, errors.New("missing or invalid name field")
	}
	email, err := shared.GetString(doc["email"])
	if err != nil {
		return shared.Student{}, errors.New("missing or invalid email field")
	}

	student := shared.Student{
		ID:              id,
		Name:            name,
		Email:           email,
		Password:        shared.GetStringOrDefault(doc["password"], ""),
		OverallProgress: shared.GetIntOrDefault(doc["overallProgress"], 0),
		Courses:         []shared.CourseProgress{},
	}

	if entries, err := shared.GetDocSlice(doc["courses"]); err == nil {
		for _, entry := range entries {
			student.Courses = append(student.Courses, shared.CourseProgress{
				ID:       shared.GetStringOrDefault(entry["id"], ""),
				Name:     shared.GetStringOrDefault(entry["name"], ""),
				Progress: shared.GetIntOrDefault(entry["progress"], 0),
			})
		}
	}

	return student, nil
}

// DocumentToCourse converts a record into a typed course.
func DocumentToCourse(doc Document) (shared.Course, error) {
	id, err := shared.GetString(doc["id"])
	if err != nil {
		return shared.Course{}, errors.New("missing or invalid id field")
	}
	name, err := shared.GetString(doc["name"])
	if err != nil {
		return shared.Course{}, errors.New("missing or invalid name field")
	}

	return shared.Course{
		ID:              id,
		Name:            name,
		Description:     shared.GetStringOrDefault(doc["description"], ""),
		Prerequisites:   shared.GetStringOrDefault(doc["prerequisites"], ""),
		EstimatedTime:   shared.GetStringOrDefault(doc["estimatedTime"], ""),
		StudentsCount:   shared.GetIntOrDefault(doc["studentsCount"], 0),
		AverageProgress: shared.GetIntOrDefault(doc["averageProgress"], 0),
	}, nil
}
