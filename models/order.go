package models

import (
	"errors"
	"time"
)

type OrderStatus string
type DeliveryMethod string

const (
	// Order statuses, in fulfillment sequence
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the studio
	OrderStatusPreparing OrderStatus = "preparing" // arrangement being made
	OrderStatusReady     OrderStatus = "ready"     // ready for pickup or dispatch
	OrderStatusDelivered OrderStatus = "delivered" // handed over to the customer
	OrderStatusCompleted OrderStatus = "completed" // closed out
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled, record retained

	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

// ParseOrderStatus maps a raw string to a known status.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCompleted,
		OrderStatusCancelled:
		return OrderStatus(raw), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Terminal reports whether no further status change is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ParseDeliveryMethod maps a raw string to a known delivery method.
func ParseDeliveryMethod(raw string) (DeliveryMethod, error) {
	switch DeliveryMethod(raw) {
	case DeliveryMethodPickup, DeliveryMethodDelivery:
		return DeliveryMethod(raw), nil
	default:
		return "", errors.New("invalid delivery method")
	}
}

// Order is an immutable record created from one cart line at checkout.
// Customer and product fields are snapshots; the order stays valid even if
// the source product is edited or removed. After creation only Status and
// UpdatedAt change. Orders are never deleted; cancellation keeps the record.
type Order struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	OrderNumber        string         `gorm:"index;not null" json:"order_number"`
	CustomerName       string         `gorm:"not null" json:"customer_name"`
	CustomerPhone      string         `gorm:"not null" json:"customer_phone"`
	CustomerEmail      string         `json:"customer_email"`
	ProductID          string         `gorm:"index" json:"product_id"`
	ProductName        string         `gorm:"not null" json:"product_name"`
	Quantity           int            `gorm:"not null" json:"quantity"`
	UnitPrice          float64        `gorm:"not null" json:"unit_price"`
	TotalAmount        float64        `gorm:"not null" json:"total_amount"` // always quantity * unit price
	CustomRequirements string         `json:"custom_requirements"`
	RecipientName      string         `gorm:"not null" json:"recipient_name"`
	RecipientPhone     string         `gorm:"not null" json:"recipient_phone"`
	DeliveryAddress    string         `json:"delivery_address"` // set iff method is delivery
	DeliveryMethod     DeliveryMethod `gorm:"type:VARCHAR(10)" json:"delivery_method"`
	PreferredDate      time.Time      `json:"preferred_date"`
	PreferredTime      string         `json:"preferred_time"`
	Status             OrderStatus    `gorm:"type:VARCHAR(12);default:'pending'" json:"status"`
	Notes              string         `json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
