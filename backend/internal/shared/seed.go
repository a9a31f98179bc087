// ============================================================================
// backend/internal/shared/seed.go
// Sample course data used for first-access seeding
// ============================================================================

package shared

// SampleCourses returns the initial course records used to seed an empty
// courses collection.
func SampleCourses() []Course {
	return []Course{
		{
			ID:              "1",
			Name:            "Introduction to Web Development",
			Description:     "Learn the basics of web development including HTML, CSS, and JavaScript.",
			Prerequisites:   "None",
			EstimatedTime:   "6 weeks",
			StudentsCount:   0,
			AverageProgress: 0,
		},
		{
			ID:              "2",
			Name:            "Advanced JavaScript",
			Description:     "Dive deeper into JavaScript with advanced concepts like closures, prototypes, and async programming.",
			Prerequisites:   "Basic JavaScript knowledge",
			EstimatedTime:   "8 weeks",
			StudentsCount:   0,
			AverageProgress: 0,
		},
		{
			ID:              "3",
			Name:            "React Fundamentals",
			Description:     "Learn the fundamentals of React, including components, state, and props.",
			Prerequisites:   "JavaScript proficiency",
			EstimatedTime:   "10 weeks",
			StudentsCount:   0,
			AverageProgress: 0,
		},
	}
}
