// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole is the single authorization axis for the admin area.
type UserRole string

const (
	// RoleAdmin may manage everything including users and roles.
	RoleAdmin UserRole = "admin"
	// RoleEditor may edit any article and manage settings and media.
	RoleEditor UserRole = "editor"
	// RoleAuthor may create articles and manage only their own.
	RoleAuthor UserRole = "author"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleAuthor:
		return true
	default:
		return false
	}
}

// User represents an account in the admin area.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      UserRole       `gorm:"type:varchar(16);not null;default:author" json:"role"`
	Image     string         `json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
