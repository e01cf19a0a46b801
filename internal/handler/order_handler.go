package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/auth"
	apperrors "theboar/internal/errors"
	"theboar/internal/model"
	"theboar/internal/service"
)

// OrderHandler serves order placement and the admin order endpoints.
type OrderHandler struct {
	svc service.OrderService
	log zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// CreateOrderRequest is an order submission.
type CreateOrderRequest struct {
	Items       []model.CartItem `json:"itens"`
	Observation string           `json:"observacao"`
}

// CreateOrderResponse is returned for a placed order.
type CreateOrderResponse struct {
	Success bool      `json:"success"`
	OrderID uuid.UUID `json:"pedidoId"`
}

// OrdersResponse wraps the caller's orders.
type OrdersResponse struct {
	Success bool          `json:"success"`
	Orders  []model.Order `json:"pedidos"`
}

// StatusBatchRequest is a list of status changes.
type StatusBatchRequest struct {
	Updates []model.StatusUpdate `json:"updates" validate:"required,min=1"`
}

// StatusBatchResponse reports each change of a batch.
type StatusBatchResponse struct {
	Success bool                       `json:"success"`
	Updated []model.StatusUpdateResult `json:"atualizados"`
}

// Create godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Cart"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Failure 500 {object} ResultResponse
// @Router /pedidos [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Requisição inválida."})
	}

	email := auth.ClaimsFromContext(c).Email
	id, err := h.svc.Create(c.Request().Context(), email, req.Items, req.Observation)
	if err != nil {
		if httpErr := apperrors.MapErrorToHTTP(err); httpErr.StatusCode < http.StatusInternalServerError {
			return c.JSON(httpErr.StatusCode, ResultResponse{Message: httpErr.Message})
		}
		requestLog(c, h.log).Error().Err(err).Str("email", email).Msg("create order")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao cadastrar pedido no sistema."})
	}
	return c.JSON(http.StatusOK, CreateOrderResponse{Success: true, OrderID: id})
}

// ListMine godoc
// @Summary Current user's orders
// @Tags orders
// @Produce json
// @Success 200 {object} OrdersResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Failure 500 {object} ResultResponse
// @Router /pedidos/carregar [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.svc.ListForOwner(c.Request().Context(), auth.ClaimsFromContext(c).Email)
	if err != nil {
		requestLog(c, h.log).Error().Err(err).Msg("list orders")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao buscar pedidos do usuário."})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, OrdersResponse{Success: true, Orders: orders})
}

// ListForUser godoc
// @Summary Orders of a user
// @Tags admin
// @Produce json
// @Param usuarioEmail query string true "Owner email"
// @Success 200 {array} model.Order
// @Failure 400 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /perfil-admin/pedidos [get]
func (h *OrderHandler) ListForUser(c echo.Context) error {
	email := c.QueryParam("usuarioEmail")
	if email == "" {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Parâmetro usuarioEmail obrigatório."})
	}

	orders, err := h.svc.ListForOwner(c.Request().Context(), email)
	if err != nil {
		requestLog(c, h.log).Error().Err(err).Str("email", email).Msg("list orders")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao buscar pedidos do usuário."})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatuses godoc
// @Summary Change the status of several orders
// @Description Each pair is applied on its own; the response lists every outcome.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body StatusBatchRequest true "Status changes"
// @Success 200 {object} StatusBatchResponse
// @Failure 400 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /perfil-admin/atualizar-pedido [post]
func (h *OrderHandler) UpdateStatuses(c echo.Context) error {
	var req StatusBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Requisição inválida."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Lista de updates vazia."})
	}

	results := h.svc.UpdateStatuses(c.Request().Context(), req.Updates)
	return c.JSON(http.StatusOK, StatusBatchResponse{Success: true, Updated: results})
}
