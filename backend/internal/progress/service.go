// ============================================================================
// backend/internal/progress/service.go
// Progress-tracking services over the collection contract
// ============================================================================

package progress

import (
	"log"
	"math"
	"sync"

	"github.com/montanaflynn/stats"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

// Service bundles the student, course, analytics, subtopic and auth
// operations over an injected database. It never owns ambient state:
// create one per process (or per test case) and pass it around.
type Service struct {
	db    store.Database
	conn  store.ConnectionStatus
	admin shared.AdminConfig

	mu        sync.Mutex
	subtopics []shared.SubtopicProgress
	sessions  map[string]shared.AuthUser
}

// New creates a Service over db. conn is the advisory connection status
// consulted by the login fallback; admin holds the dashboard credentials.
func New(db store.Database, conn store.ConnectionStatus, admin shared.AdminConfig) *Service {
	return &Service{
		db:       db,
		conn:     conn,
		admin:    admin,
		sessions: make(map[string]shared.AuthUser),
	}
}

// roundedMean returns the mean of values rounded to the nearest integer,
// or 0 for an empty input.
func roundedMean(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return int(math.Round(mean))
}

// overallProgress derives a student's overall progress from their
// embedded course entries.
func overallProgress(courses []shared.CourseProgress) int {
	values := make([]float64, 0, len(courses))
	for _, c := range courses {
		values = append(values, float64(c.Progress))
	}
	return roundedMean(values)
}

// studentFromDoc converts a record into a typed student. A record stored
// without an overall progress value gets it derived from its courses.
func studentFromDoc(doc store.Document) (shared.Student, error) {
	student, err := store.DocumentToStudent(doc)
	if err != nil {
		return shared.Student{}, err
	}
	if _, present := doc["overallProgress"]; !present {
		student.OverallProgress = overallProgress(student.Courses)
	}
	return student, nil
}

// studentsFromDocs converts records, skipping the unparseable ones the
// way the persistence scan does.
func studentsFromDocs(docs []store.Document) []shared.Student {
	students := make([]shared.Student, 0, len(docs))
	for _, doc := range docs {
		student, err := studentFromDoc(doc)
		if err != nil {
			log.Printf("Warning: skipping malformed student record: %v", err)
			continue
		}
		students = append(students, student)
	}
	return students
}
