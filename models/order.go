package models

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // created, awaiting payment
	OrderStatusPaid       OrderStatus = "PAID"       // payment confirmed
	OrderStatusProcessing OrderStatus = "PROCESSING" // being prepared
	OrderStatusShipped    OrderStatus = "SHIPPED"    // handed to the courier
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // received by the customer
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // cancelled while pending
)

// ParseOrderStatus maps a backend status string onto the enumeration.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusPaid:
		return OrderStatusPaid, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Cancellable reports whether the user may still cancel or delete the
// order. Only pending orders qualify; everything later is locked in.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending
}

// Trackable reports whether a tracking view makes sense for the order.
func (s OrderStatus) Trackable() bool {
	return s == OrderStatusShipped || s == OrderStatusDelivered
}

// Label is the customer-facing Spanish wording for the status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendiente"
	case OrderStatusPaid:
		return "Pagado"
	case OrderStatusProcessing:
		return "En preparación"
	case OrderStatusShipped:
		return "Enviado"
	case OrderStatusDelivered:
		return "Entregado"
	case OrderStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// Order references the checkout profile it ships to and the shaded cart
// lines frozen at creation time. Total is computed server-side; the client
// recomputes the same formula only for display.
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	CheckoutID    int64       `json:"checkoutId"`
	CartShadedIDs []int64     `json:"cartShadedIds"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

// ContainsShadedItem reports whether the frozen snapshot includes the
// given shaded cart line.
func (o *Order) ContainsShadedItem(id int64) bool {
	for _, shadedID := range o.CartShadedIDs {
		if shadedID == id {
			return true
		}
	}
	return false
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CheckoutID        int64   `json:"checkoutId"`
	CartShadedItemIDs []int64 `json:"cartShadedItemIds"`
	Total             float64 `json:"total"`
	Notes             string  `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest is the payload for a status transition.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
	Notes  string      `json:"notes,omitempty"`
}
