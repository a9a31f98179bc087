package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresstrack/backend/internal/shared"
)

func TestStudentDocumentRoundTrip(t *testing.T) {
	student := shared.Student{
		ID:              "s1",
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "secret",
		OverallProgress: 90,
		Courses: []shared.CourseProgress{
			{ID: "1", Name: "Introduction to Web Development", Progress: 100},
			{ID: "2", Name: "Advanced JavaScript", Progress: 80},
		},
	}

	back, err := DocumentToStudent(StudentToDocument(student))
	require.NoError(t, err)
	assert.Equal(t, student, back)
}

func TestDocumentToStudentRequiredFields(t *testing.T) {
	_, err := DocumentToStudent(Document{"name": "John", "email": "j@example.com"})
	assert.Error(t, err)

	_, err = DocumentToStudent(Document{"id": "s1", "email": "j@example.com"})
	assert.Error(t, err)

	_, err = DocumentToStudent(Document{"id": "s1", "name": "John"})
	assert.Error(t, err)
}

func TestDocumentToStudentDefaults(t *testing.T) {
	student, err := DocumentToStudent(Document{
		"id":    "s1",
		"name":  "John Doe",
		"email": "john@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "", student.Password)
	assert.Equal(t, 0, student.OverallProgress)
	assert.NotNil(t, student.Courses)
	assert.Empty(t, student.Courses)
}

// Numbers decoded from a JSON snapshot arrive as float64 and still convert.
func TestDocumentToStudentJSONNumbers(t *testing.T) {
	student, err := DocumentToStudent(Document{
		"id":              "s1",
		"name":            "John Doe",
		"email":           "john@example.com",
		"overallProgress": float64(90),
		"courses": []interface{}{
			map[string]interface{}{"id": "1", "name": "Introduction to Web Development", "progress": float64(100)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 90, student.OverallProgress)
	require.Len(t, student.Courses, 1)
	assert.Equal(t, 100, student.Courses[0].Progress)
}

func TestCourseDocumentRoundTrip(t *testing.T) {
	course := shared.Course{
		ID:              "1",
		Name:            "Introduction to Web Development",
		Description:     "Learn the basics.",
		Prerequisites:   "None",
		EstimatedTime:   "6 weeks",
		StudentsCount:   3,
		AverageProgress: 60,
	}

	back, err := DocumentToCourse(CourseToDocument(course))
	require.NoError(t, err)
	assert.Equal(t, course, back)

	_, err = DocumentToCourse(Document{"name": "No ID"})
	assert.Error(t, err)
}
