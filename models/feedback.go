package models

import "time"

// Feedback is a post-delivery rating. At most one exists per order;
// the check happens before insert, not as a database constraint.
type Feedback struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	OrderID       uint       `json:"order" gorm:"not null;index"`
	UserID        uint       `json:"user" gorm:"not null"`
	User          User       `json:"-" gorm:"foreignKey:UserID"`
	RestaurantID  uint       `json:"restaurant" gorm:"not null;index"`
	Restaurant    Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
	Rating        int        `json:"rating" gorm:"not null"`
	FoodQuality   int        `json:"foodQuality,omitempty"`
	DeliverySpeed int        `json:"deliverySpeed,omitempty"`
	Comment       string     `json:"comment"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
