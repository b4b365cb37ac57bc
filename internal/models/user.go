package models

import "time"

type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

type User struct {
	ID           uint         `gorm:"primaryKey"`
	Name         string       `gorm:"size:100;not null"`
	Email        string       `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string       `gorm:"size:255"` // google ile girişte boş
	Provider     AuthProvider `gorm:"size:20;not null;default:password"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
