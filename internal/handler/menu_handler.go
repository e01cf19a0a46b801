package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/service"
)

// MenuHandler serves the catalog.
type MenuHandler struct {
	svc service.MenuService
	log zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService, log zerolog.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, log: log}
}

// List godoc
// @Summary Menu catalog
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Failure 500 {object} ResultResponse
// @Router /cardapio [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		requestLog(c, h.log).Error().Err(err).Msg("list menu")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao carregar cardápio."})
	}
	return c.JSON(http.StatusOK, items)
}
