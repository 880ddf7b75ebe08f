package models

import (
	"slices"
	"time"
)

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

var OrderStatuses = []string{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled, OrderRefunded}

func ValidOrderStatus(s string) bool {
	return slices.Contains(OrderStatuses, s)
}

// LineItem is a product, quantity and unit price captured at order time.
type LineItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

type Order struct {
	ID              string     `json:"id" bson:"_id"`
	CustomerID      string     `json:"customerId" bson:"customerId"`
	Items           []LineItem `json:"products" bson:"products"`
	Total           float64    `json:"total" bson:"total"`
	Status          string     `json:"status" bson:"status"`
	PaymentMethod   string     `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	ShippingAddress string     `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// OrderView is an order with its customer attached. Customer is nil when the
// customer no longer exists.
type OrderView struct {
	Order    `bson:",inline"`
	Customer *Customer `json:"customer" bson:"customer,omitempty"`
}
