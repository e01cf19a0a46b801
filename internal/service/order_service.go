package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "theboar/internal/errors"
	"theboar/internal/metrics"
	"theboar/internal/model"
	"theboar/internal/repository"
)

const msgStatusUpdateFailed = "Erro ao atualizar pedido."

// OrderService exposes order domain operations.
type OrderService interface {
	Create(ctx context.Context, ownerEmail string, items []model.CartItem, observation string) (uuid.UUID, error)
	ListForOwner(ctx context.Context, ownerEmail string) ([]model.Order, error)
	// UpdateStatus reports false without error when the id does not parse or
	// matches no order.
	UpdateStatus(ctx context.Context, orderID, status string) (bool, error)
	UpdateStatuses(ctx context.Context, updates []model.StatusUpdate) []model.StatusUpdateResult
}

type orderService struct {
	repo    repository.OrderRepository
	menu    MenuService
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, menu MenuService, m *metrics.Metrics) OrderService {
	return &orderService{repo: repo, menu: menu, metrics: m, now: time.Now}
}

// Create snapshots each cart line from the menu and stores a confirmed order.
func (s *orderService) Create(ctx context.Context, ownerEmail string, items []model.CartItem, observation string) (uuid.UUID, error) {
	if len(items) == 0 {
		return uuid.Nil, apperrors.ErrEmptyOrder
	}
	for _, it := range items {
		if it.MenuItemID <= 0 || it.Quantity <= 0 {
			return uuid.Nil, apperrors.ErrInvalidOrderItem
		}
	}

	lines := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		menuItem, err := s.menu.FindByID(ctx, it.MenuItemID)
		if err != nil {
			return uuid.Nil, err
		}
		lines = append(lines, model.OrderItem{
			MenuItemID: menuItem.ID,
			Title:      menuItem.Title,
			Category:   menuItem.Category,
			Quantity:   it.Quantity,
			UnitPrice:  menuItem.UnitPrice,
			Total:      menuItem.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	order := &model.Order{
		OwnerEmail:  ownerEmail,
		Items:       lines,
		Observation: observation,
		Status:      model.OrderStatusConfirmed,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return uuid.Nil, fmt.Errorf("create order: %w", err)
	}

	s.metrics.IncOrdersCreated()
	return order.ID, nil
}

func (s *orderService) ListForOwner(ctx context.Context, ownerEmail string) ([]model.Order, error) {
	return s.repo.ListByOwner(ctx, ownerEmail)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	st := model.OrderStatus(status)
	if !st.Valid() {
		return false, apperrors.NewFieldError("status", apperrors.ErrInvalidStatus)
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return false, nil
	}

	matched, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return matched > 0, nil
}

// UpdateStatuses applies each pair in order. A failing pair does not stop or
// undo the others.
func (s *orderService) UpdateStatuses(ctx context.Context, updates []model.StatusUpdate) []model.StatusUpdateResult {
	results := make([]model.StatusUpdateResult, 0, len(updates))
	for _, u := range updates {
		res := model.StatusUpdateResult{OrderID: u.OrderID, Status: u.Status}

		ok, err := s.UpdateStatus(ctx, u.OrderID, u.Status)
		switch {
		case err == nil:
			res.Success = ok
		case errors.Is(err, apperrors.ErrInvalidStatus):
			res.Message = apperrors.ErrInvalidStatus.Error()
		default:
			res.Message = msgStatusUpdateFailed
		}

		s.metrics.ObserveStatusUpdate(res.Success)
		results = append(results, res)
	}
	return results
}
