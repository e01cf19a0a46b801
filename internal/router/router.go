package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"theboar/internal/auth"
	"theboar/internal/config"
	"theboar/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Order *handler.OrderHandler
	Menu  *handler.MenuHandler
	Seed  *handler.SeedHandler
}

// Register wires routes and middleware. A nil gatherer leaves /metrics unmounted.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	h Handlers,
	jwtService *auth.JWTService,
	sessions auth.SessionStore,
	gatherer prometheus.Gatherer,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(log)))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	e.Validator = handler.NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if gatherer != nil && cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/cadastro", h.Auth.Register)
	e.POST("/login", h.Auth.Login)
	e.POST("/login-admin", h.Auth.LoginAdmin)
	e.GET("/cardapio", h.Menu.List)

	// Session routes
	session := auth.SessionMiddleware(jwtService, sessions)
	e.POST("/logout", h.Auth.Logout, session)
	e.GET("/perfil", h.User.Profile, session)
	e.POST("/perfil/atualizar", h.User.UpdateProfile, session)
	e.POST("/pedidos", h.Order.Create, session)
	e.GET("/pedidos/carregar", h.Order.ListMine, session)

	// Admin routes
	admin := e.Group("/perfil-admin", session, auth.RequireAdmin)
	admin.GET("/usuarios", h.User.ListUsers)
	admin.GET("/pedidos", h.Order.ListForUser)
	admin.POST("/atualizar-usuario", h.User.UpdateUser)
	admin.POST("/atualizar-pedido", h.Order.UpdateStatuses)
	admin.POST("/seed", h.Seed.Seed)
}

func requestLoggerConfig(log zerolog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}
}
