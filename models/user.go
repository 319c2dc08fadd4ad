package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer          UserRole = "CUSTOMER"
	RoleRestaurantStaff   UserRole = "RESTAURANT_STAFF"
	RoleDeliveryPersonnel UserRole = "DELIVERY_PERSONNEL"
	RoleAdmin             UserRole = "ADMIN"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleRestaurantStaff, RoleDeliveryPersonnel, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'CUSTOMER'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
