package models

import "time"

// OrderStatus enumerates the order lifecycle states
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out for delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// PaymentStatus tracks payment settlement independently of delivery
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"user" gorm:"not null;index"`
	RestaurantID    uint          `json:"restaurant" gorm:"not null;index"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64       `json:"totalAmount" gorm:"not null"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" gorm:"not null;default:'pending'"`
	PaymentMethod   string        `json:"paymentMethod"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"orderId" gorm:"not null;index"`
	MenuItemID string  `json:"menuItem"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"` // snapshot price at time of order
	Quantity   int     `json:"quantity" gorm:"not null"`
}
