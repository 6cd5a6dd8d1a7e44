package models

import "time"

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Password     string     `json:"-" gorm:"not null"`
	Cuisine      []string   `json:"cuisine" gorm:"serializer:json"`
	Address      Address    `json:"address" gorm:"serializer:json"`
	Phone        string     `json:"phone"`
	Image        string     `json:"image"`
	Menu         []MenuItem `json:"menu" gorm:"foreignKey:RestaurantID"`
	DeliveryTime string     `json:"deliveryTime" gorm:"default:'30-45 min'"`
	MinOrder     float64    `json:"minOrder" gorm:"default:0"`
	Rating       float64    `json:"rating" gorm:"default:4.0"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MenuItem belongs to exactly one restaurant. The ID is an opaque
// identifier assigned at insertion.
type MenuItem struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	RestaurantID uint    `json:"restaurantId" gorm:"not null;index"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" gorm:"not null"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Available    bool    `json:"available"`
}
