package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusRejected       OrderStatus = "REJECTED"
)

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentPaypal         PaymentMethod = "PAYPAL"
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentWallet         PaymentMethod = "WALLET"
)

// ValidPaymentMethod reports whether m is one of the recognized payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPaypal, PaymentCashOnDelivery, PaymentWallet:
		return true
	}
	return false
}

type Order struct {
	ID                  uint                 `json:"id" gorm:"primaryKey"`
	OrderNumber         string               `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerID          uint                 `json:"customer_id" gorm:"not null"`
	Customer            User                 `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID        uint                 `json:"restaurant_id" gorm:"not null"`
	Restaurant          Restaurant           `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryUserID      *uint                `json:"delivery_user_id"`
	DeliveryUser        *User                `json:"delivery_user,omitempty" gorm:"foreignKey:DeliveryUserID"`
	Status              OrderStatus          `json:"status" gorm:"not null;default:'PENDING'"`
	Subtotal            decimal.Decimal      `json:"subtotal" gorm:"type:decimal(10,2)"`
	DeliveryFee         decimal.Decimal      `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	Tax                 decimal.Decimal      `json:"tax" gorm:"type:decimal(10,2)"`
	Total               decimal.Decimal      `json:"total" gorm:"type:decimal(10,2)"`
	DeliveryAddress     string               `json:"delivery_address" gorm:"not null"`
	PhoneNumber         string               `json:"phone_number"`
	SpecialInstructions string               `json:"special_instructions"`
	PaymentMethod       PaymentMethod        `json:"payment_method" gorm:"not null"`
	IsPaid              bool                 `json:"is_paid" gorm:"default:false"`
	Items               []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory       []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	CompletedAt         *time.Time           `json:"completed_at"`
}

type OrderItem struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	OrderID             uint            `json:"order_id" gorm:"not null"`
	MenuItemID          uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem            MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name                string          `json:"name"`                                          // snapshot name at order time
	UnitPrice           decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"` // snapshot price at order time
	Quantity            int             `json:"quantity" gorm:"not null"`
	Subtotal            decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"` // unit price x quantity
	SpecialInstructions string          `json:"special_instructions"`
}

// OrderStatusHistory tracks every status change of an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
