package models

import "time"

type SupportTicket struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Issue     string    `json:"issue" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:'open'"`
	CreatedAt time.Time `json:"createdAt"`
}
