package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the fixed status
// enumeration. Orders never accept free-form status values.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            string
	UserID        string
	CustomerEmail string
	TotalAmount   int64
	Status        OrderStatus
	Address       string
	Phone         string
	Note          string
	Items         []OrderItem
	CreatedAt     time.Time
}

type OrderItem struct {
	ProductName string
	Quantity    int
	Price       int64
}
