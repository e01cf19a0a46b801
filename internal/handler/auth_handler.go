package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/auth"
	apperrors "theboar/internal/errors"
	"theboar/internal/model"
	"theboar/internal/service"
	"theboar/internal/validation"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService  service.AuthService
	userService  service.UserService
	log          zerolog.Logger
	cookieMaxAge int
	secureCookie bool
}

// CookieOptions configures the session cookie written on login.
type CookieOptions struct {
	MaxAgeSeconds int
	Secure        bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, log zerolog.Logger, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		log:          log,
		cookieMaxAge: cookie.MaxAgeSeconds,
		secureCookie: cookie.Secure,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"senha" form:"senha" validate:"required"`
}

// Register godoc
// @Summary Register a new customer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.UserInput true "Registration data"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /cadastro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req model.UserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: statusError, Message: "Requisição inválida."})
	}

	_, err := h.userService.Register(c.Request().Context(), req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		var vErr *apperrors.ValidationError
		switch httpErr.Code {
		case apperrors.CodeValidation:
			errors.As(err, &vErr)
			return c.JSON(httpErr.StatusCode, StatusResponse{Status: statusError, Errors: vErr.Fields})
		case apperrors.CodeDuplicateEmail:
			return c.JSON(httpErr.StatusCode, StatusResponse{
				Status: statusError,
				Errors: map[string]string{validation.FieldEmail: httpErr.Message},
			})
		case apperrors.CodeDuplicateCPF:
			return c.JSON(httpErr.StatusCode, StatusResponse{
				Status: statusError,
				Errors: map[string]string{validation.FieldCPF: httpErr.Message},
			})
		}
		requestLog(c, h.log).Error().Err(err).Msg("register user")
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: statusError, Message: "Erro ao processar cadastro."})
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusOK, Message: "Cadastro realizado com sucesso!"})
}

// Login godoc
// @Summary Login customer
// @Description Sets the httpOnly session cookie on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse
// @Failure 401 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, false, "Login bem-sucedido!", "Email ou senha inválidos.")
}

// LoginAdmin godoc
// @Summary Login administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} StatusResponse
// @Failure 401 {object} StatusResponse
// @Failure 403 {object} StatusResponse
// @Router /login-admin [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, true, "Login de administrador bem-sucedido!", "Credenciais inválidas para administrador.")
}

func (h *AuthHandler) login(c echo.Context, adminOnly bool, okMsg, failMsg string) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: statusError, Message: "Requisição inválida."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: statusError, Message: "Email e senha são obrigatórios."})
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		switch httpErr.Code {
		case apperrors.CodeAccessDenied:
			return c.JSON(httpErr.StatusCode, StatusResponse{Status: statusError, Message: httpErr.Message})
		case apperrors.CodeInvalidCredentials:
			// The response stays generic; the log keeps the actual cause.
			requestLog(c, h.log).Warn().Str("email", req.Email).Str("cause", err.Error()).Msg("login failed")
			return c.JSON(httpErr.StatusCode, StatusResponse{Status: statusError, Message: failMsg})
		}
		requestLog(c, h.log).Error().Err(err).Msg("login")
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: statusError, Message: "Erro ao processar login."})
	}

	auth.SetSessionCookie(c, session.Token, h.cookieMaxAge, h.secureCookie)
	return c.JSON(http.StatusOK, StatusResponse{Status: statusOK, Message: okMsg, User: session.Profile})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the current session and clears its cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), auth.ClaimsFromContext(c)); err != nil {
		requestLog(c, h.log).Error().Err(err).Msg("revoke session")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Success: false, Message: "Erro ao encerrar sessão."})
	}
	auth.ClearSessionCookie(c, h.secureCookie)
	return c.JSON(http.StatusOK, ResultResponse{Success: true, Message: "Sessão encerrada."})
}
