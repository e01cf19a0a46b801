package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the fulfillment status of an order.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "Confirmado"
	OrderStatusPreparing OrderStatus = "Em preparo"
	OrderStatusDelivered OrderStatus = "Entregue"
	OrderStatusCanceled  OrderStatus = "Cancelado"
)

// OrderStatuses lists every accepted status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// Valid reports whether s is one of OrderStatuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a user's submitted selection of menu items.
type Order struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerEmail  string      `json:"usuarioEmail" gorm:"size:255;not null;index"`
	Items       []OrderItem `json:"itens" gorm:"foreignKey:OrderID"`
	Observation string      `json:"observacao" gorm:"type:text"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'Confirmado';index"`
	CreatedAt   time.Time   `json:"data"`
	UpdatedAt   time.Time   `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Total sums the line totals.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total)
	}
	return total
}

// OrderItem is a menu item snapshot taken when the order was placed.
type OrderItem struct {
	ID         uint            `json:"-" gorm:"primaryKey"`
	OrderID    uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	MenuItemID int             `json:"idCardapio" gorm:"not null"`
	Title      string          `json:"titulo" gorm:"size:255;not null"`
	Category   MenuCategory    `json:"tipo" gorm:"size:50;not null"`
	Quantity   int             `json:"quantidade" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"valorUnitario" gorm:"type:decimal(10,2);not null"`
	Total      decimal.Decimal `json:"valorTotal" gorm:"type:decimal(10,2);not null"`
}

// CartItem is one line of an order submission.
type CartItem struct {
	MenuItemID int `json:"idCardapio"`
	Quantity   int `json:"quantidade"`
}

// StatusUpdate is one pair of an admin status batch.
type StatusUpdate struct {
	OrderID string `json:"pedidoId"`
	Status  string `json:"status"`
}

// StatusUpdateResult reports the outcome of one StatusUpdate.
type StatusUpdateResult struct {
	OrderID string `json:"pedidoId"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
