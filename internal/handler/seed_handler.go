package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seeder *service.Seeder
	log    zerolog.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seeder *service.Seeder, log zerolog.Logger) *SeedHandler {
	return &SeedHandler{seeder: seeder, log: log}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Result  service.SeedResult `json:"resultado"`
}

// Seed godoc
// @Summary Insert the administrator and the menu if missing
// @Tags admin
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Failure 500 {object} ResultResponse
// @Router /perfil-admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := h.seeder.Run(c.Request().Context())
	if err != nil {
		requestLog(c, h.log).Error().Err(err).Msg("seed")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao popular dados iniciais."})
	}
	requestLog(c, h.log).Info().Bool("admin_created", res.AdminCreated).Int("menu_items", res.MenuItems).Msg("seed completed")
	return c.JSON(http.StatusOK, SeedResponse{Success: true, Message: "Dados iniciais verificados.", Result: res})
}
