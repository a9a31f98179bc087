// ============================================================================
// backend/internal/progress/students.go
// Student operations: listing, lookup, creation, deletion, progress updates
// ============================================================================

package progress

import (
	"context"
	"errors"
	"fmt"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// GetAllStudents returns every student record with derived fields filled.
func (s *Service) GetAllStudents(ctx context.Context) ([]shared.Student, error) {
	if err := s.EnsureCollections(ctx); err != nil {
		return nil, err
	}

	docs, err := s.db.Collection("students").Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	return studentsFromDocs(docs), nil
}

// GetStudentByID returns the student with the given id.
func (s *Service) GetStudentByID(ctx context.Context, studentID string) (shared.Student, error) {
	if err := s.EnsureCollections(ctx); err != nil {
		return shared.Student{}, err
	}

	doc, err := s.db.Collection("students").FindOne(ctx, store.ByID(studentID))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return shared.Student{}, shared.ErrStudentNotFound
		}
		return shared.Student{}, fmt.Errorf("failed to fetch student %s: %w", studentID, err)
	}
	return studentFromDoc(doc)
}

// AddStudent creates a student record with no progress and returns its id.
func (s *Service) AddStudent(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" {
		return "", fmt.Errorf("name and email are required")
	}
	if err := s.EnsureCollections(ctx); err != nil {
		return "", err
	}

	studentID := shared.GenerateStudentID()
	student := shared.Student{
		ID:       studentID,
		Name:     name,
		Email:    email,
		Password: password,
		Courses:  []shared.CourseProgress{},
	}

	if _, err := s.db.Collection("students").InsertOne(ctx, store.StudentToDocument(student)); err != nil {
		return "", fmt.Errorf("failed to add student: %w", err)
	}
	return studentID, nil
}

// DeleteStudent removes the student record and its persisted storage.
func (s *Service) DeleteStudent(ctx context.Context, studentID string) error {
	result, err := s.db.Collection("students").DeleteOne(ctx, store.ByID(studentID))
	if err != nil {
		return fmt.Errorf("failed to delete student %s: %w", studentID, err)
	}
	if result.DeletedCount == 0 {
		return shared.ErrStudentNotFound
	}
	return nil
}

// UpdateStudentProgress records a student's progress for a course:
// the embedded entry is updated in place (or appended on first touch),
// the student's overall progress is re-derived, and the course's
// aggregate fields are recomputed over all enrolled students.
func (s *Service) UpdateStudentProgress(ctx context.Context, studentID, courseID string, progressValue int) error {
	if err := s.EnsureCollections(ctx); err != nil {
		return err
	}

	students := s.db.Collection("students")
	courses := s.db.Collection("courses")

	student, err := s.GetStudentByID(ctx, studentID)
	if err != nil {
		return err
	}

	if _, exists := student.CourseEntry(courseID); exists {
		// Rewrite the whole courses array with the one entry changed.
		updated := make([]interface{}, 0, len(student.Courses))
		for _, entry := range student.Courses {
			if entry.ID == courseID {
				entry.Progress = progressValue
			}
			updated = append(updated, map[string]interface{}(store.CourseProgressToDocument(entry)))
		}
		_, err = students.UpdateOne(ctx, store.ByID(studentID),
			store.SetFields(map[string]interface{}{"courses": updated}))
		if err != nil {
			return fmt.Errorf("failed to update course progress: %w", err)
		}
	} else {
		courseDoc, err := courses.FindOne(ctx, store.ByID(courseID))
		if err != nil {
			if errors.Is(err, store.ErrNoDocuments) {
				return shared.ErrCourseNotFound
			}
			return fmt.Errorf("failed to fetch course %s: %w", courseID, err)
		}
		course, err := store.DocumentToCourse(courseDoc)
		if err != nil {
			return fmt.Errorf("failed to parse course %s: %w", courseID, err)
		}

		_, err = students.UpdateOne(ctx, store.ByID(studentID), store.PushCourse(shared.CourseProgress{
			ID:       courseID,
			Name:     course.Name,
			Progress: progressValue,
		}))
		if err != nil {
			return fmt.Errorf("failed to record course progress: %w", err)
		}
	}

	// Re-derive the student's overall progress from the stored entries.
	updated, err := s.GetStudentByID(ctx, studentID)
	if err != nil {
		return err
	}
	_, err = students.UpdateOne(ctx, store.ByID(studentID),
		store.SetFields(map[string]interface{}{"overallProgress": overallProgress(updated.Courses)}))
	if err != nil {
		return fmt.Errorf("failed to update overall progress: %w", err)
	}

	return s.recomputeCourseAggregates(ctx, courseID)
}

// recomputeCourseAggregates refreshes a course's studentsCount and
// averageProgress from the full student collection.
func (s *Service) recomputeCourseAggregates(ctx context.Context, courseID string) error {
	docs, err := s.db.Collection("students").Find(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch students: %w", err)
	}

	var values []float64
	for _, student := range studentsFromDocs(docs) {
		if entry, ok := student.CourseEntry(courseID); ok {
			values = append(values, float64(entry.Progress))
		}
	}

	_, err = s.db.Collection("courses").UpdateOne(ctx, store.ByID(courseID),
		store.SetFields(map[string]interface{}{
			"averageProgress": roundedMean(values),
			"studentsCount":   len(values),
		}))
	if err != nil {
		return fmt.Errorf("failed to update course aggregates: %w", err)
	}
	return nil
}
