package services_test

import (
	"testing"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRestaurantService(db)

	t.Run("any authenticated user may create", func(t *testing.T) {
		customer := seedUser(t, db, "Carl Customer", models.RoleCustomer)
		restaurant, err := svc.Create(customer.ID, services.RestaurantInput{
			Name:        "Carl's Kitchen",
			Cuisine:     "Home",
			DeliveryFee: dec("2.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, customer.ID, restaurant.OwnerID)
		assert.True(t, restaurant.IsActive)
	})

	t.Run("negative delivery fee rejected", func(t *testing.T) {
		staff := seedUser(t, db, "Sam Staff", models.RoleRestaurantStaff)
		_, err := svc.Create(staff.ID, services.RestaurantInput{
			Name:        "Bad Fee",
			DeliveryFee: dec("-1.00"),
		})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.Create(9999, services.RestaurantInput{Name: "Ghost"})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestRestaurantService_UpdateDelete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRestaurantService(db)

	owner := seedUser(t, db, "Olive Owner", models.RoleRestaurantStaff)
	other := seedUser(t, db, "Rita Rival", models.RoleRestaurantStaff)
	restaurant := seedRestaurant(t, db, owner, "Pasta Place", "3.00", true)

	t.Run("owner updates fields and can deactivate", func(t *testing.T) {
		inactive := false
		updated, err := svc.Update(owner.ID, restaurant.ID, services.RestaurantInput{
			Name:        "Pasta Palace",
			Cuisine:     "Italian",
			DeliveryFee: dec("4.00"),
			IsActive:    &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pasta Palace", updated.Name)
		assert.True(t, updated.DeliveryFee.Equal(dec("4.00")))
		assert.False(t, updated.IsActive)
	})

	t.Run("non-owner update is denied", func(t *testing.T) {
		_, err := svc.Update(other.ID, restaurant.ID, services.RestaurantInput{
			Name:        "Hijack",
			DeliveryFee: dec("0"),
		})
		assert.ErrorIs(t, err, apperr.ErrAccessDenied)
	})

	t.Run("non-owner delete is denied", func(t *testing.T) {
		err := svc.Delete(other.ID, restaurant.ID)
		assert.ErrorIs(t, err, apperr.ErrAccessDenied)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(owner.ID, restaurant.ID))
		_, err := svc.GetByID(restaurant.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestRestaurantService_Reads(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRestaurantService(db)

	owner := seedUser(t, db, "Olive Owner", models.RoleRestaurantStaff)
	a := seedRestaurant(t, db, owner, "Place A", "1.00", true)
	seedRestaurant(t, db, owner, "Place B", "2.00", false)
	seedMenuItem(t, db, a, "Pasta", "10.00", true)

	t.Run("list includes inactive restaurants", func(t *testing.T) {
		all, err := svc.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("detail preloads menu", func(t *testing.T) {
		got, err := svc.GetByID(a.ID)
		require.NoError(t, err)
		assert.Len(t, got.MenuItems, 1)
	})

	t.Run("by owner", func(t *testing.T) {
		mine, err := svc.GetByOwner(owner.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 2)
	})
}
