// ============================================================================
// backend/internal/progress/auth.go
// Login, registration and session lookup with mock token issuance
// ============================================================================

package progress

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"progresstrack/backend/internal/shared"
	"progresstrack/backend/internal/store"
)

const (
	roleStudent = "Student"
	roleAdmin   = "Admin"
)

// fallbackUsers are the built-in demo accounts used when the store is not
// connected or holds no matching student.
var fallbackUsers = []shared.Student{
	{ID: "1", Name: "John Doe", Email: "john@example.com", Password: "password123"},
}

// newToken mints an opaque session token. Tokens carry no claims; they
// only key the in-memory session table.
func newToken(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (s *Service) startSession(token string, user shared.AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user
}

// Login authenticates a student by email and password. When connected,
// the students collection is consulted first; the built-in demo accounts
// serve as a fallback either way.
func (s *Service) Login(ctx context.Context, email, password string) (shared.AuthResult, error) {
	if s.conn.IsConnected() {
		doc, err := s.db.Collection("students").FindOne(ctx, store.ByEmail(email))
		if err == nil {
			student, convErr := studentFromDoc(doc)
			if convErr == nil && student.Password == password {
				return s.issueStudentToken("db-token", student), nil
			}
		} else if !errors.Is(err, store.ErrNoDocuments) {
			log.Printf("Warning: login lookup failed, falling back to demo accounts: %v", err)
		}
	}

	for _, user := range fallbackUsers {
		if user.Email == email && user.Password == password {
			return s.issueStudentToken("mock-token", user), nil
		}
	}
	return shared.AuthResult{}, shared.ErrInvalidCredentials
}

func (s *Service) issueStudentToken(prefix string, student shared.Student) shared.AuthResult {
	user := shared.AuthUser{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
		Role:  roleStudent,
	}
	token := newToken(prefix)
	s.startSession(token, user)
	return shared.AuthResult{Token: token, User: user}
}

// Register creates a student account from the self-registration form and
// logs it in. The new student record is persisted through the collection.
func (s *Service) Register(ctx context.Context, name, email, password string) (shared.AuthResult, error) {
	if err := shared.ValidateRegistration(name, email, password, password); err != nil {
		return shared.AuthResult{}, err
	}
	if err := s.EnsureCollections(ctx); err != nil {
		return shared.AuthResult{}, err
	}

	for _, user := range fallbackUsers {
		if user.Email == email {
			return shared.AuthResult{}, shared.ErrEmailExists
		}
	}
	_, err := s.db.Collection("students").FindOne(ctx, store.ByEmail(email))
	if err == nil {
		return shared.AuthResult{}, shared.ErrEmailExists
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return shared.AuthResult{}, fmt.Errorf("failed to check existing accounts: %w", err)
	}

	student := shared.Student{
		ID:       shared.GenerateStudentID(),
		Name:     name,
		Email:    email,
		Password: password,
		Courses:  []shared.CourseProgress{},
	}
	if _, err := s.db.Collection("students").InsertOne(ctx, store.StudentToDocument(student)); err != nil {
		return shared.AuthResult{}, fmt.Errorf("failed to register student: %w", err)
	}

	return s.issueStudentToken("mock-token", student), nil
}

// AdminLogin authenticates against the configured admin credentials.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (shared.AuthResult, error) {
	if email != s.admin.Email || password != s.admin.Password {
		return shared.AuthResult{}, shared.ErrInvalidCredentials
	}

	user := shared.AuthUser{
		ID:    "admin1",
		Name:  "Admin User",
		Email: s.admin.Email,
		Role:  roleAdmin,
	}
	token := newToken("admin-mock-token")
	s.startSession(token, user)
	return shared.AuthResult{Token: token, User: user}, nil
}

// GetCurrentUser resolves a session token back to its user.
func (s *Service) GetCurrentUser(ctx context.Context, token string) (shared.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[token]
	if !ok {
		return shared.AuthUser{}, shared.ErrInvalidToken
	}
	return user, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
