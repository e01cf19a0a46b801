package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "session"
	claimsContextKey  = "session_claims"
)

// ErrSessionRevoked is returned for tokens whose session was logged out.
var ErrSessionRevoked = errors.New("session revoked")

// UnauthorizedResponse is the body sent when a route needs a session.
type UnauthorizedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, UnauthorizedResponse{
		Success: false,
		Message: "Não autorizado.",
	})
}

// SessionMiddleware requires a valid, non-revoked session cookie and stores
// its claims in the Echo context.
func SessionMiddleware(jwtService *JWTService, sessions SessionStore) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + SessionCookieName,
		ContextKey:  claimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := sessions.IsRevoked(c.Request().Context(), claims.ID)
			if err == nil && revoked {
				return nil, ErrSessionRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized(c)
		},
	})
}

// RequireAdmin rejects sessions that do not belong to the administrator.
// It must run after SessionMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFromContext(c)
		if claims == nil || !claims.IsAdmin {
			return unauthorized(c)
		}
		return next(c)
	}
}

// ClaimsFromContext returns the session claims, or nil outside a session.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}

// SetSessionCookie writes the session token cookie.
func SetSessionCookie(c echo.Context, token string, maxAgeSeconds int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	SetSessionCookie(c, "", -1, secure)
}
