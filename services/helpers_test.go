package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var emailSeq atomic.Int64

// newTestDB opens a fresh in-memory database. Max open connections is pinned
// to one so every pooled connection sees the same in-memory schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(db, nil, decimal.RequireFromString("0.08"))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s-%d@example.com", role, emailSeq.Add(1)),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, owner *models.User, name, deliveryFee string, active bool) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		OwnerID:     owner.ID,
		Name:        name,
		Cuisine:     "Italian",
		Address:     "1 Main St",
		DeliveryFee: dec(deliveryFee),
		IsActive:    active,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurant *models.Restaurant, name, price string, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         name,
		Price:        dec(price),
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// placeOrder creates a valid two-line order through the service and returns it.
func placeOrder(t *testing.T, svc *services.OrderService, customer *models.User, restaurant *models.Restaurant, items []services.CartItem) *models.Order {
	t.Helper()
	order, err := svc.CreateOrder(customer.ID, services.CreateOrderInput{
		RestaurantID:    restaurant.ID,
		Items:           items,
		DeliveryAddress: "42 Elm St",
		PhoneNumber:     "555-0100",
		PaymentMethod:   string(models.PaymentCreditCard),
	})
	require.NoError(t, err)
	return order
}

// forceStatus moves an order directly to a status, bypassing the state
// machine, for test setup only.
func forceStatus(t *testing.T, db *gorm.DB, orderID uint, status models.OrderStatus) {
	t.Helper()
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error)
}
