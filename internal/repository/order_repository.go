package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"theboar/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// Create stores the order together with its items.
	Create(ctx context.Context, order *model.Order) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.Order, error)
	// UpdateStatus sets the status of one order and returns how many matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	}))
}

// ListByOwner returns the owner's orders with their items, in insertion order.
func (r *orderRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("owner_email = ?", ownerEmail).
		Order("created_at").
		Find(&orders).Error
	if err != nil {
		return nil, translateError(err)
	}
	return orders, nil
}

// UpdateStatus touches only the status column; CreatedAt never changes.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}
