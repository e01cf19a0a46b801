package service

import (
	"context"
	"fmt"
	"strings"

	"theboar/internal/auth"
	apperrors "theboar/internal/errors"
	"theboar/internal/metrics"
	"theboar/internal/model"
)

// Session is the result of a successful login.
type Session struct {
	Token   string
	Profile *model.BasicProfile
	Admin   bool
}

// AuthService handles authentication operations.
type AuthService interface {
	// Login authenticates the user and issues a session token. With adminOnly
	// set, any email other than the administrator's is refused with
	// ErrAccessDenied before credentials are checked.
	Login(ctx context.Context, email, password string, adminOnly bool) (*Session, error)
	// Logout revokes the session for the rest of its lifetime.
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	users      UserService
	jwtService *auth.JWTService
	sessions   auth.SessionStore
	metrics    *metrics.Metrics
	adminEmail string
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserService, jwtService *auth.JWTService, sessions auth.SessionStore, m *metrics.Metrics, adminEmail string) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		sessions:   sessions,
		metrics:    m,
		adminEmail: adminEmail,
	}
}

func (s *authService) Login(ctx context.Context, email, password string, adminOnly bool) (*Session, error) {
	email = strings.TrimSpace(email)
	isAdmin := email == s.adminEmail
	if adminOnly && !isAdmin {
		return nil, apperrors.ErrAccessDenied
	}

	profile, err := s.users.Authenticate(ctx, email, password)
	s.metrics.ObserveLogin(err == nil)
	if err != nil {
		return nil, err
	}

	_, token, err := s.jwtService.GenerateSessionToken(profile.Email, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &Session{Token: token, Profile: profile, Admin: isAdmin}, nil
}

func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, claims.ID, s.jwtService.RemainingTTL(claims))
}
