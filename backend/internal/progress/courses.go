// ============================================================================
// backend/internal/progress/courses.go
// Course collection operations and first-access seeding
// ============================================================================

package progress

import (
	"context"
	"fmt"
	"log"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// EnsureCollections seeds the courses collection with the sample catalog
// when it is empty. Safe to call before every operation.
func (s *Service) EnsureCollections(ctx context.Context) error {
	courses := s.db.Collection("courses")

	count, err := courses.CountDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]store.Document, 0)
	for _, c := range shared.SampleCourses() {
		docs = append(docs, store.CourseToDocument(c))
	}
	if _, err := courses.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}
	log.Println("Initialized courses collection with sample data")
	return nil
}

// ListCourses returns every course record.
func (s *Service) ListCourses(ctx context.Context) ([]shared.Course, error) {
	if err := s.EnsureCollections(ctx); err != nil {
		return nil, err
	}

	docs, err := s.db.Collection("courses").Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}

	courses := make([]shared.Course, 0, len(docs))
	for _, doc := range docs {
		course, err := store.DocumentToCourse(doc)
		if err != nil {
			log.Printf("Warning: skipping malformed course record: %v", err)
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// CreateCourse inserts a new course with zeroed aggregates and returns
// its generated id.
func (s *Service) CreateCourse(ctx context.Context, name, description, prerequisites, estimatedTime string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("course name is required")
	}
	if err := s.EnsureCollections(ctx); err != nil {
		return "", err
	}

	courseID := shared.GenerateCourseID()
	course := shared.Course{
		ID:            courseID,
		Name:          name,
		Description:   description,
		Prerequisites: prerequisites,
		EstimatedTime: estimatedTime,
	}

	if _, err := s.db.Collection("courses").InsertOne(ctx, store.CourseToDocument(course)); err != nil {
		return "", fmt.Errorf("failed to create course: %w", err)
	}
	return courseID, nil
}

// UpdateCourse shallow-merges the given fields into the course record.
func (s *Service) UpdateCourse(ctx context.Context, courseID string, fields map[string]interface{}) error {
	if err := s.EnsureCollections(ctx); err != nil {
		return err
	}

	result, err := s.db.Collection("courses").UpdateOne(ctx, store.ByID(courseID), store.SetFields(fields))
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", courseID, err)
	}
	if result.MatchedCount == 0 {
		return shared.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes the course record. Progress entries students
// already recorded for it are left in place.
func (s *Service) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.EnsureCollections(ctx); err != nil {
		return err
	}

	result, err := s.db.Collection("courses").DeleteOne(ctx, store.ByID(courseID))
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", courseID, err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrCourseNotFound
	}
	return nil
}
