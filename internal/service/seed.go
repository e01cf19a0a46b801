package service

import (
	"context"
)

// SeedResult describes what a seeding run inserted.
type SeedResult struct {
	AdminCreated bool `json:"adminCriado"`
	MenuItems    int  `json:"itensCardapio"`
}

// Seeder inserts the initial administrator and menu when they are missing.
// Running it again is a no-op.
type Seeder struct {
	users UserService
	menu  MenuService
}

// NewSeeder creates a new seeder.
func NewSeeder(users UserService, menu MenuService) *Seeder {
	return &Seeder{users: users, menu: menu}
}

// Run seeds the administrator first, then the menu.
func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	created, err := s.users.EnsureSeedAdmin(ctx)
	if err != nil {
		return res, err
	}
	res.AdminCreated = created

	n, err := s.menu.EnsureSeeded(ctx)
	if err != nil {
		return res, err
	}
	res.MenuItems = n
	return res, nil
}
