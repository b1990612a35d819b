package controllers

import (
	"ehr-portal-service/internal/app/config"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx := r.Context()

	session, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		utils.LogSecurityEvent(ctrl.Log, "login_failed", utils.GetRequestID(r.Context()), "medium",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	ctrl.setSessionCookie(w, session.Token)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, session)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Signup)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeSignupRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx := r.Context()

	session, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	ctrl.setSessionCookie(w, session.Token)
	if request.APIKey != "" {
		ctrl.setVendorCookie(w, constvars.CookieVendorAPIKey, request.APIKey)
	}
	if request.AccessToken != "" {
		ctrl.setVendorCookie(w, constvars.CookieVendorAccessToken, request.AccessToken)
	}

	utils.LogBusinessEvent(ctrl.Log, "user_signed_up", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingUserIDKey, session.User.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SignupSuccessMessage, session)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	response, err := ctrl.AuthUsecase.GetSession(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx := r.Context()

	if err := ctrl.AuthUsecase.Logout(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.sessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) sessionCookieName() string {
	if ctrl.InternalConfig.Session.CookieName != "" {
		return ctrl.InternalConfig.Session.CookieName
	}
	return constvars.CookieSessionToken
}

func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.sessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   ctrl.InternalConfig.Session.MaxAgeInHours * 60 * 60,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) setVendorCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   constvars.VendorCookieMaxAgeInSeconds,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
