package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        string    `json:"id" db:"id" example:"3f0c1d9e-8f5b-4b7e-9a43-1c2d3e4f5a6b"` // Opaque unique identifier
	Name      string    `json:"name" db:"name" example:"Ana Souza"`
	Email     string    `json:"email" db:"email" example:"ana@example.com"` // Login key
	Password  string    `json:"-" db:"password"`                            // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
