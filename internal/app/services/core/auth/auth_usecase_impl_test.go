package auth

import (
	"context"
	"ehr-portal-service/internal/app/contracts/mocks"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestUsecase(t *testing.T) (*authUsecase, *mocks.MockSessionService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := new(mocks.MockSessionService)
	return &authUsecase{
		SessionService:    sessions,
		AdminEmail:        "admin@admin.com",
		AdminPasswordHash: string(hash),
		Log:               zap.NewNop(),
	}, sessions
}

func issuedSession(userID, email, name string) *models.Session {
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Session{
		SessionID: "jti-1",
		UserID:    userID,
		Email:     email,
		Name:      name,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(720 * time.Hour),
	}
}

func TestLoginAdmin(t *testing.T) {
	uc, sessions := newTestUsecase(t)
	sessions.On("Issue", mock.Anything, constvars.AdminUserID, "admin@admin.com", constvars.AdminUserName).
		Return("signed-token", issuedSession(constvars.AdminUserID, "admin@admin.com", constvars.AdminUserName), nil)

	session, err := uc.Login(context.Background(), &requests.Login{Email: "admin@admin.com", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, "Admin User", session.User.Name)
	assert.Equal(t, "2025-01-31T00:00:00Z", session.ExpiresAt)
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	tests := []struct {
		name    string
		request requests.Login
	}{
		{"wrong password", requests.Login{Email: "admin@admin.com", Password: "nope"}},
		{"unknown email", requests.Login{Email: "someone@example.com", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, sessions := newTestUsecase(t)

			_, err := uc.Login(context.Background(), &tt.request)
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
			assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
			sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSignupUsesEmailLocalPartAsName(t *testing.T) {
	uc, sessions := newTestUsecase(t)
	sessions.On("Issue", mock.Anything, mock.AnythingOfType("string"), "jane.doe@example.com", "jane.doe").
		Return("signed-token", issuedSession("u-1", "jane.doe@example.com", "jane.doe"), nil)

	session, err := uc.Signup(context.Background(), &requests.Signup{Email: "jane.doe@example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", session.User.Name)
	sessions.AssertExpectations(t)
}

func TestSignupWithAdminEmailChecksPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Signup(context.Background(), &requests.Signup{Email: "admin@admin.com", Password: "wrong-password"})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
}

func TestGetSession(t *testing.T) {
	uc, _ := newTestUsecase(t)

	session, err := uc.GetSession(context.Background(), issuedSession("u-1", "jane@example.com", "jane"))
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "u-1", session.User.ID)
	assert.Empty(t, session.Token)

	_, err = uc.GetSession(context.Background(), nil)
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	uc, sessions := newTestUsecase(t)
	session := issuedSession("u-1", "jane@example.com", "jane")
	sessions.On("Revoke", mock.Anything, session).Return(nil)

	require.NoError(t, uc.Logout(context.Background(), session))
	sessions.AssertExpectations(t)
}

func TestLogoutPropagatesRevokeFailure(t *testing.T) {
	uc, sessions := newTestUsecase(t)
	session := issuedSession("u-1", "jane@example.com", "jane")
	sessions.On("Revoke", mock.Anything, session).Return(exceptions.ErrRedisSet(errors.New("connection refused")))

	assert.Error(t, uc.Logout(context.Background(), session))
}
