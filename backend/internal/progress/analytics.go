// ============================================================================
// backend/internal/progress/analytics.go
// Read-only analytics over the full student and course collections
// ============================================================================

package progress

import (
	"context"
	"sort"

	"progresstrack/backend/internal/shared"
)

// topPerformerCount is how many students the top-performer list holds.
const topPerformerCount = 2

// strugglingThreshold marks students below this overall progress as
// struggling.
const strugglingThreshold = 30

// GetStudentAnalytics computes the admin dashboard view. Per-course
// numbers are recomputed from the raw student records on every call
// rather than trusted from the course records' possibly-stale aggregates.
// Identical inputs always produce identical outputs.
func (s *Service) GetStudentAnalytics(ctx context.Context) (shared.StudentAnalytics, error) {
	if err := s.EnsureCollections(ctx); err != nil {
		return shared.StudentAnalytics{}, err
	}

	studentDocs, err := s.db.Collection("students").Find(ctx)
	if err != nil {
		return shared.StudentAnalytics{}, err
	}
	students := studentsFromDocs(studentDocs)

	courses, err := s.ListCourses(ctx)
	if err != nil {
		return shared.StudentAnalytics{}, err
	}

	analytics := shared.StudentAnalytics{
		TotalStudents:      len(students),
		CoursesBreakdown:   make([]shared.CourseBreakdown, 0, len(courses)),
		TopPerformers:      make([]shared.StudentRanking, 0, topPerformerCount),
		StrugglingStudents: make([]shared.StudentRanking, 0),
	}

	overall := make([]float64, 0, len(students))
	for _, student := range students {
		overall = append(overall, float64(student.OverallProgress))
	}
	analytics.AverageProgress = roundedMean(overall)

	// Top performers, ties broken by original collection order.
	ranked := make([]shared.Student, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallProgress > ranked[j].OverallProgress
	})
	for i := 0; i < len(ranked) && i < topPerformerCount; i++ {
		analytics.TopPerformers = append(analytics.TopPerformers, shared.StudentRanking{
			ID:       ranked[i].ID,
			Name:     ranked[i].Name,
			Progress: ranked[i].OverallProgress,
		})
	}

	for _, student := range students {
		if student.OverallProgress < strugglingThreshold {
			analytics.StrugglingStudents = append(analytics.StrugglingStudents, shared.StudentRanking{
				ID:       student.ID,
				Name:     student.Name,
				Progress: student.OverallProgress,
			})
		}
	}

	for _, course := range courses {
		var values []float64
		for _, student := range students {
			if entry, ok := student.CourseEntry(course.ID); ok {
				values = append(values, float64(entry.Progress))
			}
		}
		analytics.CoursesBreakdown = append(analytics.CoursesBreakdown, shared.CourseBreakdown{
			ID:              course.ID,
			Name:            course.Name,
			StudentsCount:   len(values),
			AverageProgress: roundedMean(values),
			Description:     course.Description,
			Prerequisites:   course.Prerequisites,
			EstimatedTime:   course.EstimatedTime,
		})
	}

	return analytics, nil
}
