// ============================================================================
// backend/internal/shared/models.go
// Shared data models for students, courses and progress tracking
// ============================================================================

package shared

// ============================================================================
// Student Models
// ============================================================================

// Student represents a student account together with their recorded
// per-course progress. OverallProgress is derived: the rounded mean of
// Courses[].Progress, or 0 when Courses is empty.
type Student struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Password        string           `json:"password,omitempty"`
	OverallProgress int              `json:"overallProgress"`
	Courses         []CourseProgress `json:"courses"`
}

// CourseProgress is one embedded per-course progress entry. At most one
// entry per course id exists on a given student.
type CourseProgress struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// CourseEntry returns the progress entry for courseID and whether it exists.
func (s *Student) CourseEntry(courseID string) (CourseProgress, bool) {
	for _, c := range s.Courses {
		if c.ID == courseID {
			return c, true
		}
	}
	return CourseProgress{}, false
}

// ============================================================================
// Course Models
// ============================================================================

// Course represents a course record in the courses collection.
// StudentsCount and AverageProgress are derived aggregates, recomputed
// after any student-course progress change.
type Course struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Prerequisites   string `json:"prerequisites"`
	EstimatedTime   string `json:"estimatedTime"`
	StudentsCount   int    `json:"studentsCount"`
	AverageProgress int    `json:"averageProgress"`
}

// ============================================================================
// Catalog Models (student-facing course detail view)
// ============================================================================

// CatalogCourse is the student-facing course representation with its
// topic/subtopic breakdown. It is a separate, static representation from
// the Course records in the courses collection.
type CatalogCourse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
	EstimatedTime string   `json:"estimatedTime"`
	Topics        []Topic  `json:"topics"`
}

// Topic groups subtopics within a catalog course.
type Topic struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Subtopic is the finest-grained unit a student can mark progress on.
type Subtopic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourseSummary is the catalog list view shape.
type CourseSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Prerequisites  []string `json:"prerequisites"`
	EstimatedTime  string   `json:"estimatedTime"`
	TopicsCount    int      `json:"topicsCount"`
	SubtopicsCount int      `json:"subtopicsCount"`
}

// ============================================================================
// Subtopic Progress Models
// ============================================================================

// SubtopicStatus is the three-state progress marker for a single subtopic.
type SubtopicStatus string

const (
	StatusNotStarted SubtopicStatus = "Not Started"
	StatusInProgress SubtopicStatus = "In Progress"
	StatusCompleted  SubtopicStatus = "Completed"
)

// Valid reports whether s is one of the three known statuses.
func (s SubtopicStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// SubtopicProgress records one student's status for one subtopic.
// This stream is tracked independently of the embedded CourseProgress
// percentages; the two are not reconciled.
type SubtopicProgress struct {
	StudentID  string         `json:"studentId"`
	SubtopicID string         `json:"subtopicId"`
	Status     SubtopicStatus `json:"status"`
}

// ============================================================================
// Analytics Models
// ============================================================================

// StudentRanking is one entry in the top-performer / struggling lists.
type StudentRanking struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// CourseBreakdown is the per-course slice of the analytics view,
// recomputed from the raw student records on every call.
type CourseBreakdown struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StudentsCount   int    `json:"studentsCount"`
	AverageProgress int    `json:"averageProgress"`
	Description     string `json:"description"`
	Prerequisites   string `json:"prerequisites"`
	EstimatedTime   string `json:"estimatedTime"`
}

// StudentAnalytics is the aggregate admin-dashboard view.
type StudentAnalytics struct {
	TotalStudents      int               `json:"totalStudents"`
	AverageProgress    int               `json:"averageProgress"`
	CoursesBreakdown   []CourseBreakdown `json:"coursesBreakdown"`
	TopPerformers      []StudentRanking  `json:"topPerformers"`
	StrugglingStudents []StudentRanking  `json:"strugglingStudents"`
}

// CourseStats is the per-course slice of the student dashboard stats.
type CourseStats struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	TotalSubtopics      int    `json:"totalSubtopics"`
	CompletedSubtopics  int    `json:"completedSubtopics"`
	InProgressSubtopics int    `json:"inProgressSubtopics"`
	ProgressPercentage  int    `json:"progressPercentage"`
}

// StudentStats is the student dashboard view computed over the subtopic
// progress stream and the course catalog.
type StudentStats struct {
	TotalSubtopics  int           `json:"totalSubtopics"`
	CompletedCount  int           `json:"completedCount"`
	InProgressCount int           `json:"inProgressCount"`
	NotStartedCount int           `json:"notStartedCount"`
	OverallProgress int           `json:"overallProgress"`
	CourseProgress  []CourseStats `json:"courseProgress"`
}

// ============================================================================
// Auth Models
// ============================================================================

// AuthUser is the password-free user shape returned by auth operations.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // Student or Admin
}

// AuthResult carries an opaque session token and the authenticated user.
type AuthResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
