package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresstrack/backend/internal/shared"
)

func TestUpdateProgressUpserts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-1", shared.StatusInProgress))
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-2", shared.StatusCompleted))
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-1", shared.StatusCompleted))

	records, err := svc.GetProgressForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, records, 2, "same subtopic updates in place")

	byID := make(map[string]shared.SubtopicStatus)
	for _, r := range records {
		byID[r.SubtopicID] = r.Status
	}
	assert.Equal(t, shared.StatusCompleted, byID["1-1-1"])
	assert.Equal(t, shared.StatusCompleted, byID["1-1-2"])
}

func TestUpdateProgressRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateProgress(context.Background(), "s1", "1-1-1", shared.SubtopicStatus("Done"))
	assert.Error(t, err)
}

func TestGetProgressForStudentIsolatesStudents(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-1", shared.StatusCompleted))
	require.NoError(t, svc.UpdateProgress(ctx, "s2", "1-1-2", shared.StatusInProgress))

	records, err := svc.GetProgressForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1-1-1", records[0].SubtopicID)
}

func TestGetStudentStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Course 1: three completed, one in progress out of twelve subtopics.
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-1", shared.StatusCompleted))
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-2", shared.StatusCompleted))
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-1-3", shared.StatusCompleted))
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-2-1", shared.StatusInProgress))
	// One explicit Not Started record counts the same as no record.
	require.NoError(t, svc.UpdateProgress(ctx, "s1", "1-2-2", shared.StatusNotStarted))

	stats, err := svc.GetStudentStats(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 36, stats.TotalSubtopics)
	assert.Equal(t, 3, stats.CompletedCount)
	assert.Equal(t, 1, stats.InProgressCount)
	assert.Equal(t, 32, stats.NotStartedCount)
	// 3 of 36 completed → 8.33 → 8.
	assert.Equal(t, 8, stats.OverallProgress)

	require.Len(t, stats.CourseProgress, 3)
	course1 := stats.CourseProgress[0]
	assert.Equal(t, "1", course1.ID)
	assert.Equal(t, 12, course1.TotalSubtopics)
	assert.Equal(t, 3, course1.CompletedSubtopics)
	assert.Equal(t, 1, course1.InProgressSubtopics)
	// 3 of 12 completed → 25.
	assert.Equal(t, 25, course1.ProgressPercentage)

	assert.Equal(t, 0, stats.CourseProgress[1].CompletedSubtopics)
	assert.Equal(t, 0, stats.CourseProgress[1].ProgressPercentage)
}

// The subtopic stream and the embedded course percentages are tracked
// independently; updating one never touches the other.
func TestSubtopicStreamIndependentOfCourseProgress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddStudent(ctx, "John Doe", "john.doe@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStudentProgress(ctx, id, "1", 100))

	stats, err := svc.GetStudentStats(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.OverallProgress)

	require.NoError(t, svc.UpdateProgress(ctx, id, "1-1-1", shared.StatusCompleted))

	student, err := svc.GetStudentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 100, student.OverallProgress)
	entry, ok := student.CourseEntry("1")
	require.True(t, ok)
	assert.Equal(t, 100, entry.Progress)
}
