// ============================================================================
// backend/internal/progress/catalog.go
// Static course catalog for the student-facing course detail view
// ============================================================================

package progress

import (
	"context"

	"progresstrack/backend/internal/shared"
)

// catalog is the student-facing course breakdown. It is a second, static
// representation of the courses, separate from the course records in the
// collection; only the catalog carries topics and subtopics.
var catalog = []shared.CatalogCourse{
	{
		ID:            "1",
		Name:          "Introduction to Web Development",
		Description:   "Learn the basics of HTML, CSS, and JavaScript to build beautiful websites.",
		Prerequisites: []string{"None"},
		EstimatedTime: "6 weeks",
		Topics: []shared.Topic{
			{
				ID:   "1-1",
				Name: "HTML Basics",
				Subtopics: []shared.Subtopic{
					{ID: "1-1-1", Name: "HTML Document Structure"},
					{ID: "1-1-2", Name: "Working with Text"},
					{ID: "1-1-3", Name: "HTML Lists"},
					{ID: "1-1-4", Name: "HTML Links"},
				},
			},
			{
				ID:   "1-2",
				Name: "CSS Fundamentals",
				Subtopics: []shared.Subtopic{
					{ID: "1-2-1", Name: "CSS Selectors"},
					{ID: "1-2-2", Name: "Box Model"},
					{ID: "1-2-3", Name: "Flexbox"},
					{ID: "1-2-4", Name: "CSS Grid"},
				},
			},
			{
				ID:   "1-3",
				Name: "JavaScript Basics",
				Subtopics: []shared.Subtopic{
					{ID: "1-3-1", Name: "Variables and Data Types"},
					{ID: "1-3-2", Name: "Functions"},
					{ID: "1-3-3", Name: "DOM Manipulation"},
					{ID: "1-3-4", Name: "Events"},
				},
			},
		},
	},
	{
		ID:            "2",
		Name:          "Advanced JavaScript",
		Description:   "Master advanced JavaScript concepts including asynchronous programming, closures, and the module pattern.",
		Prerequisites: []string{"Introduction to Web Development"},
		EstimatedTime: "8 weeks",
		Topics: []shared.Topic{
			{
				ID:   "2-1",
				Name: "Advanced JavaScript Concepts",
				Subtopics: []shared.Subtopic{
					{ID: "2-1-1", Name: "Closures"},
					{ID: "2-1-2", Name: "Prototypes"},
					{ID: "2-1-3", Name: "This Keyword"},
					{ID: "2-1-4", Name: "ES6+ Features"},
				},
			},
			{
				ID:   "2-2",
				Name: "Asynchronous JavaScript",
				Subtopics: []shared.Subtopic{
					{ID: "2-2-1", Name: "Callbacks"},
					{ID: "2-2-2", Name: "Promises"},
					{ID: "2-2-3", Name: "Async/Await"},
					{ID: "2-2-4", Name: "Event Loop"},
				},
			},
			{
				ID:   "2-3",
				Name: "JavaScript Design Patterns",
				Subtopics: []shared.Subtopic{
					{ID: "2-3-1", Name: "Module Pattern"},
					{ID: "2-3-2", Name: "Factory Pattern"},
					{ID: "2-3-3", Name: "Observer Pattern"},
					{ID: "2-3-4", Name: "MVC Pattern"},
				},
			},
		},
	},
	{
		ID:            "3",
		Name:          "React Fundamentals",
		Description:   "Learn how to build modern user interfaces with React, a popular JavaScript library.",
		Prerequisites: []string{"Advanced JavaScript"},
		EstimatedTime: "10 weeks",
		Topics: []shared.Topic{
			{
				ID:   "3-1",
				Name: "React Basics",
				Subtopics: []shared.Subtopic{
					{ID: "3-1-1", Name: "JSX Syntax"},
					{ID: "3-1-2", Name: "Components"},
					{ID: "3-1-3", Name: "Props"},
					{ID: "3-1-4", Name: "State"},
				},
			},
			{
				ID:   "3-2",
				Name: "React Hooks",
				Subtopics: []shared.Subtopic{
					{ID: "3-2-1", Name: "useState"},
					{ID: "3-2-2", Name: "useEffect"},
					{ID: "3-2-3", Name: "useContext"},
					{ID: "3-2-4", Name: "Custom Hooks"},
				},
			},
			{
				ID:   "3-3",
				Name: "React Router",
				Subtopics: []shared.Subtopic{
					{ID: "3-3-1", Name: "Setting Up Routes"},
					{ID: "3-3-2", Name: "Navigation"},
					{ID: "3-3-3", Name: "Route Parameters"},
					{ID: "3-3-4", Name: "Nested Routes"},
				},
			},
		},
	},
}

func subtopicCount(course shared.CatalogCourse) int {
	count := 0
	for _, topic := range course.Topics {
		count += len(topic.Subtopics)
	}
	return count
}

// GetCourses returns the catalog list view with topic/subtopic counts.
func (s *Service) GetCourses(ctx context.Context) ([]shared.CourseSummary, error) {
	summaries := make([]shared.CourseSummary, 0, len(catalog))
	for _, course := range catalog {
		summaries = append(summaries, shared.CourseSummary{
			ID:             course.ID,
			Name:           course.Name,
			Description:    course.Description,
			Prerequisites:  course.Prerequisites,
			EstimatedTime:  course.EstimatedTime,
			TopicsCount:    len(course.Topics),
			SubtopicsCount: subtopicCount(course),
		})
	}
	return summaries, nil
}

// GetCatalogCourse returns one catalog course with its full topic tree.
func (s *Service) GetCatalogCourse(ctx context.Context, courseID string) (shared.CatalogCourse, error) {
	for _, course := range catalog {
		if course.ID == courseID {
			return course, nil
		}
	}
	return shared.CatalogCourse{}, shared.ErrCourseNotFound
}
