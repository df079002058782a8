package models

import "time"

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Subject   string
	Message   string `gorm:"type:text"`
	Status    string `gorm:"size:16;default:'new'"` // "new" | "resolved"
	CreatedAt time.Time
}
