package auth

import (
	"context"
	"ehr-portal-service/internal/app/config"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	SessionService    contracts.SessionService
	AdminEmail        string
	AdminPasswordHash string
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			SessionService:    sessionService,
			AdminEmail:        internalConfig.Session.AdminEmail,
			AdminPasswordHash: internalConfig.Session.AdminPasswordHash,
			Log:               logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

// Login accepts only the configured admin account.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !uc.isAdmin(request.Email) || uc.AdminPasswordHash == "" || !utils.CheckPasswordHash(request.Password, uc.AdminPasswordHash) {
		uc.Log.Warn("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.issue(ctx, constvars.AdminUserID, request.Email, constvars.AdminUserName)
}

// Signup opens a session for any address other than the admin one. The
// admin address goes through the password check instead.
func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.isAdmin(request.Email) {
		return uc.Login(ctx, &requests.Login{Email: request.Email, Password: request.Password})
	}

	name, _, _ := strings.Cut(request.Email, "@")
	return uc.issue(ctx, uuid.NewString(), request.Email, name)
}

func (uc *authUsecase) GetSession(ctx context.Context, session *models.Session) (*responses.Session, error) {
	if session == nil {
		return nil, exceptions.ErrSessionMissing(nil)
	}
	return toSessionResponse("", session), nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session == nil {
		return nil
	}

	err := uc.SessionService.Revoke(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error revoking session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}

func (uc *authUsecase) isAdmin(email string) bool {
	return uc.AdminEmail != "" && strings.EqualFold(strings.TrimSpace(email), uc.AdminEmail)
}

func (uc *authUsecase) issue(ctx context.Context, userID, email, name string) (*responses.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, session, err := uc.SessionService.Issue(ctx, userID, email, name)
	if err != nil {
		uc.Log.Error("authUsecase.issue error issuing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.issue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return toSessionResponse(token, session), nil
}

func toSessionResponse(token string, session *models.Session) *responses.Session {
	response := &responses.Session{
		User: responses.SessionUser{
			ID:    session.UserID,
			Email: session.Email,
			Name:  session.Name,
		},
		Authenticated: true,
		Token:         token,
	}
	if !session.ExpiresAt.IsZero() {
		response.ExpiresAt = session.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return response
}
