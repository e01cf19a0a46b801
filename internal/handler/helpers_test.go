package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"theboar/internal/auth"
	"theboar/internal/model"
	"theboar/internal/service"
)

var testJWT = auth.NewJWTService("handler-test-secret", time.Hour)

type noRevocations struct{}

func (noRevocations) Revoke(context.Context, string, time.Duration) error { return nil }

func (noRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }

type session struct {
	email string
	admin bool
}

// serve runs h behind the session middleware, and behind RequireAdmin as
// well when admin is true. A nil sess sends no cookie.
func serve(t *testing.T, method, target, body string, h echo.HandlerFunc, sess *session, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sess != nil {
		_, token, err := testJWT.GenerateSessionToken(sess.email, sess.admin)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if admin {
		h = auth.RequireAdmin(h)
	}
	h = auth.SessionMiddleware(testJWT, noRevocations{})(h)
	require.NoError(t, h(c))
	return rec
}

// servePublic runs h without any session handling.
func servePublic(t *testing.T, method, target, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in model.UserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) error {
	args := m.Called(ctx, email, upd)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*model.BasicProfile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BasicProfile), args.Error(1)
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) EnsureSeedAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, adminOnly bool) (*service.Session, error) {
	args := m.Called(ctx, email, password, adminOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, ownerEmail string, items []model.CartItem, observation string) (uuid.UUID, error) {
	args := m.Called(ctx, ownerEmail, items, observation)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOrderService) ListForOwner(ctx context.Context, ownerEmail string) ([]model.Order, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	args := m.Called(ctx, orderID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderService) UpdateStatuses(ctx context.Context, updates []model.StatusUpdate) []model.StatusUpdateResult {
	args := m.Called(ctx, updates)
	return args.Get(0).([]model.StatusUpdateResult)
}
