package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresstrack/backend/internal/shared"
)

func TestGetCourses(t *testing.T) {
	svc := newTestService(t)

	summaries, err := svc.GetCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	first := summaries[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Introduction to Web Development", first.Name)
	assert.Equal(t, 3, first.TopicsCount)
	assert.Equal(t, 12, first.SubtopicsCount)
	assert.Equal(t, []string{"None"}, first.Prerequisites)
}

func TestGetCatalogCourse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	course, err := svc.GetCatalogCourse(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Advanced JavaScript", course.Name)
	require.Len(t, course.Topics, 3)
	assert.Equal(t, "Asynchronous JavaScript", course.Topics[1].Name)
	assert.Equal(t, "2-2-2", course.Topics[1].Subtopics[1].ID)

	_, err = svc.GetCatalogCourse(ctx, "nope")
	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
}
