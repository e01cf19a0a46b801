package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"theboar/docs"
	"theboar/internal/auth"
	"theboar/internal/config"
	"theboar/internal/handler"
	"theboar/internal/kv"
	"theboar/internal/logger"
	"theboar/internal/metrics"
	"theboar/internal/router"
	"theboar/internal/service"
	"theboar/internal/storage"
)

// @title The Boar API
// @version 1.0
// @description Restaurant ordering API: registration, session login, menu, orders and administration.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing")
	}

	repos, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("storage init")
	}
	defer closeStore()

	kvClient := kv.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer kvClient.Close()
	if err := kvClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, logout revocation disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(kvClient)

	// Initialize services
	userService := service.NewUserService(repos.Users, hasher, m, service.AdminAccount{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	menuService := service.NewMenuService(repos.Menu)
	orderService := service.NewOrderService(repos.Orders, menuService, m)
	authService := service.NewAuthService(userService, jwtService, tokenStore, m, cfg.AdminEmail)
	seeder := service.NewSeeder(userService, menuService)

	seeded, err := seeder.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Bool("admin_created", seeded.AdminCreated).Int("menu_items", seeded.MenuItems).Msg("initial data checked")

	// Initialize handlers
	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(authService, userService, log, handler.CookieOptions{
			MaxAgeSeconds: int(jwtService.Expiry() / time.Second),
			Secure:        cfg.SessionCookieSecure,
		}),
		User:  handler.NewUserHandler(userService, log),
		Order: handler.NewOrderHandler(orderService, log),
		Menu:  handler.NewMenuHandler(menuService, log),
		Seed:  handler.NewSeedHandler(seeder, log),
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, handlers, jwtService, tokenStore, reg)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Str("driver", cfg.DBDriver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
