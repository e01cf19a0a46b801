package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/model"
)

// Envelope status values used by the registration and login endpoints.
const (
	statusOK    = "ok"
	statusError = "erro"
)

// StatusResponse is the envelope of /cadastro, /login and /login-admin.
type StatusResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Errors  map[string]string   `json:"errors,omitempty"`
	User    *model.BasicProfile `json:"usuario,omitempty"`
}

// ResultResponse is the envelope of the session and admin endpoints.
type ResultResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the request validator installed on the Echo instance.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// requestLog tags log events with the request id set by the RequestID middleware.
func requestLog(c echo.Context, log zerolog.Logger) *zerolog.Logger {
	l := log.With().Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Logger()
	return &l
}
