package session

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type sessionService struct {
	Secret          []byte
	MaxAge          time.Duration
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	now             func() time.Time
}

// NewSessionService signs HS256 session tokens. redisRepository may be nil,
// in which case revocation is a no-op and tokens simply expire.
func NewSessionService(secret string, maxAge time.Duration, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = newSessionService(secret, maxAge, redisRepository, logger)
	})
	return sessionServiceInstance
}

func newSessionService(secret string, maxAge time.Duration, redisRepository contracts.RedisRepository, logger *zap.Logger) *sessionService {
	return &sessionService{
		Secret:          []byte(secret),
		MaxAge:          maxAge,
		RedisRepository: redisRepository,
		Log:             logger,
		now:             time.Now,
	}
}

func revokedKey(sessionID string) string {
	return constvars.RedisRevokedSessionKeyPrefix + sessionID
}

func (s *sessionService) Issue(ctx context.Context, userID, email, name string) (string, *models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if len(s.Secret) == 0 {
		return "", nil, exceptions.ErrSessionSigning(fmt.Errorf("session secret is empty"))
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Name:      name,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.MaxAge),
	}

	claims := sessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.SessionID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		s.Log.Error("sessionService.Issue error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, exceptions.ErrSessionSigning(err)
	}

	s.Log.Info("sessionService.Issue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return token, session, nil
}

func (s *sessionService) Verify(ctx context.Context, token string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, exceptions.ErrSessionMissing(nil)
	}
	if len(s.Secret) == 0 {
		s.Log.Error("sessionService.Verify called without a signing secret",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSessionInvalid(errors.New("session secret is not configured"))
	}

	claims := new(sessionClaims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		s.Log.Warn("sessionService.Verify rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionInvalid(err)
	}

	now := s.now()
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) || claims.ID == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session token expired or incomplete"))
	}

	session := &models.Session{
		SessionID: claims.ID,
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	if s.RedisRepository != nil {
		revoked, err := s.RedisRepository.Exists(ctx, revokedKey(session.SessionID))
		if err != nil {
			s.Log.Error("sessionService.Verify error checking revocation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSessionInvalid(err)
		}
		if revoked {
			return nil, exceptions.ErrSessionRevoked(nil)
		}
	}

	return session, nil
}

func (s *sessionService) Revoke(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if session == nil || s.RedisRepository == nil {
		return nil
	}

	remaining := session.RemainingLifetime(s.now())
	if remaining <= 0 {
		return nil
	}

	err := s.RedisRepository.Set(ctx, revokedKey(session.SessionID), true, remaining)
	if err != nil {
		s.Log.Error("sessionService.Revoke error storing revocation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("sessionService.Revoke succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}
