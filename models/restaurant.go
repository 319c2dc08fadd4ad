package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OwnerID      uint            `json:"owner_id" gorm:"not null"`
	Owner        User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name         string          `json:"name" gorm:"not null"`
	Cuisine      string          `json:"cuisine"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	ImageURL     string          `json:"image_url"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	DeliveryTime string          `json:"delivery_time"` // e.g. "30-45 min"
	PriceRange   string          `json:"price_range"`
	Rating       float64         `json:"rating" gorm:"default:0"`
	IsActive     bool            `json:"is_active"`
	MenuItems    []MenuItem      `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type MenuItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL     string          `json:"image_url"`
	Category     string          `json:"category"`
	IsPopular    bool            `json:"is_popular"`
	IsAvailable  bool            `json:"is_available"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
