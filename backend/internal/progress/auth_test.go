package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresstrack/backend/internal/shared"
)

func TestLoginDemoAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Contains(t, result.Token, "mock-token-")
	assert.Equal(t, "John Doe", result.User.Name)
	assert.Equal(t, "Student", result.User.Role)

	user, err := svc.GetCurrentUser(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User, user)
}

func TestLoginStoredStudent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane Smith", "jane@example.com", "secret")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Contains(t, result.Token, "db-token-")
	assert.Equal(t, "Jane Smith", result.User.Name)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestRegisterIssuesSessionAndPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, "Jane Smith", "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Contains(t, result.Token, "mock-token-")
	assert.Equal(t, "Student", result.User.Role)

	student, err := svc.GetStudentByID(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", student.Email)
	assert.Empty(t, student.Courses)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane Smith", "jane@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Jane Again", "jane@example.com", "other")
	assert.ErrorIs(t, err, shared.ErrEmailExists)

	// Demo account emails are reserved too.
	_, err = svc.Register(ctx, "Impostor", "john@example.com", "secret")
	assert.ErrorIs(t, err, shared.ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "jane@example.com", "secret")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "Jane Smith", "jane@example.com", "")
	assert.Error(t, err)
}

func TestAdminLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.AdminLogin(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	assert.Contains(t, result.Token, "admin-mock-token-")
	assert.Equal(t, "Admin", result.User.Role)

	user, err := svc.GetCurrentUser(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", user.ID)

	_, err = svc.AdminLogin(ctx, testAdminEmail, "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)

	svc.Logout(result.Token)
	_, err = svc.GetCurrentUser(ctx, result.Token)
	assert.ErrorIs(t, err, shared.ErrInvalidToken)

	// Logging out an unknown token is a no-op.
	svc.Logout("nope")
}

func TestGetCurrentUserUnknownToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCurrentUser(context.Background(), "bogus")
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
}
