package main

import (
	"context"
	"os"
	"time"

	"theboar/internal/auth"
	"theboar/internal/config"
	"theboar/internal/logger"
	"theboar/internal/service"
	"theboar/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	log.Info().Str("driver", cfg.DBDriver).Msg("starting seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing")
	}

	repos, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init")
	}

	users := service.NewUserService(repos.Users, hasher, nil, service.AdminAccount{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	seeder := service.NewSeeder(users, service.NewMenuService(repos.Menu))

	res, err := seeder.Run(ctx)
	closeStore()
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}

	if res.AdminCreated {
		log.Info().Str("email", cfg.AdminEmail).Msg("administrator created")
	} else {
		log.Info().Str("email", cfg.AdminEmail).Msg("administrator already present")
	}
	log.Info().Int("menu_items", res.MenuItems).Msg("seed completed")
}
