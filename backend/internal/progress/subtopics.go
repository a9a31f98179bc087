// ============================================================================
// backend/internal/progress/subtopics.go
// Per-subtopic status tracking and the student dashboard stats
// ============================================================================

package progress

import (
	"context"
	"fmt"
	"math"

	"progresstrack/backend/internal/shared"
)

// GetProgressForStudent returns the student's subtopic status records.
func (s *Service) GetProgressForStudent(ctx context.Context, studentID string) ([]shared.SubtopicProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]shared.SubtopicProgress, 0)
	for _, p := range s.subtopics {
		if p.StudentID == studentID {
			records = append(records, p)
		}
	}
	return records, nil
}

// UpdateProgress upserts one student's status for one subtopic. This
// stream is independent of the embedded course-progress percentages;
// updating one never touches the other.
func (s *Service) UpdateProgress(ctx context.Context, studentID, subtopicID string, status shared.SubtopicStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid subtopic status: %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.subtopics {
		if p.StudentID == studentID && p.SubtopicID == subtopicID {
			s.subtopics[i].Status = status
			return nil
		}
	}
	s.subtopics = append(s.subtopics, shared.SubtopicProgress{
		StudentID:  studentID,
		SubtopicID: subtopicID,
		Status:     status,
	})
	return nil
}

// GetStudentStats computes the student dashboard view: completion counts
// across the whole catalog and a per-course completion percentage.
func (s *Service) GetStudentStats(ctx context.Context, studentID string) (shared.StudentStats, error) {
	records, err := s.GetProgressForStudent(ctx, studentID)
	if err != nil {
		return shared.StudentStats{}, err
	}

	bySubtopic := make(map[string]shared.SubtopicStatus, len(records))
	for _, p := range records {
		bySubtopic[p.SubtopicID] = p.Status
	}

	stats := shared.StudentStats{
		CourseProgress: make([]shared.CourseStats, 0, len(catalog)),
	}

	for _, course := range catalog {
		cs := shared.CourseStats{
			ID:   course.ID,
			Name: course.Name,
		}
		for _, topic := range course.Topics {
			for _, subtopic := range topic.Subtopics {
				cs.TotalSubtopics++
				switch bySubtopic[subtopic.ID] {
				case shared.StatusCompleted:
					cs.CompletedSubtopics++
				case shared.StatusInProgress:
					cs.InProgressSubtopics++
				}
			}
		}
		if cs.TotalSubtopics > 0 {
			cs.ProgressPercentage = int(math.Round(float64(cs.CompletedSubtopics) / float64(cs.TotalSubtopics) * 100))
		}

		stats.TotalSubtopics += cs.TotalSubtopics
		stats.CompletedCount += cs.CompletedSubtopics
		stats.InProgressCount += cs.InProgressSubtopics
		stats.CourseProgress = append(stats.CourseProgress, cs)
	}

	stats.NotStartedCount = stats.TotalSubtopics - stats.CompletedCount - stats.InProgressCount
	if stats.TotalSubtopics > 0 {
		stats.OverallProgress = int(math.Round(float64(stats.CompletedCount) / float64(stats.TotalSubtopics) * 100))
	}
	return stats, nil
}
