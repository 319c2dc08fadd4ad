package services_test

import (
	"testing"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)

	owner := seedUser(t, db, "Olive Owner", models.RoleRestaurantStaff)
	other := seedUser(t, db, "Rita Rival", models.RoleRestaurantStaff)
	restaurant := seedRestaurant(t, db, owner, "Pasta Place", "3.00", true)

	t.Run("owner creates an item, available by default", func(t *testing.T) {
		item, err := svc.Create(owner.ID, restaurant.ID, services.MenuItemInput{
			Name:     "Lasagna",
			Price:    dec("14.50"),
			Category: "Mains",
		})
		require.NoError(t, err)
		assert.True(t, item.IsAvailable)
		assert.True(t, item.Price.Equal(dec("14.50")))
		assert.Equal(t, restaurant.ID, item.RestaurantID)
	})

	t.Run("non-owner reads as restaurant not found", func(t *testing.T) {
		_, err := svc.Create(other.ID, restaurant.ID, services.MenuItemInput{Name: "Nope", Price: dec("1.00")})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := svc.Create(owner.ID, restaurant.ID, services.MenuItemInput{Name: "Freebie", Price: dec("0")})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestMenuService_UpdateDelete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)

	owner := seedUser(t, db, "Olive Owner", models.RoleRestaurantStaff)
	other := seedUser(t, db, "Rita Rival", models.RoleRestaurantStaff)
	restaurant := seedRestaurant(t, db, owner, "Pasta Place", "3.00", true)
	item := seedMenuItem(t, db, restaurant, "Pasta", "10.00", true)

	t.Run("owner updates fields including availability", func(t *testing.T) {
		unavailable := false
		updated, err := svc.Update(owner.ID, item.ID, services.MenuItemInput{
			Name:        "Pasta Deluxe",
			Price:       dec("11.00"),
			IsPopular:   true,
			IsAvailable: &unavailable,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pasta Deluxe", updated.Name)
		assert.True(t, updated.Price.Equal(dec("11.00")))
		assert.True(t, updated.IsPopular)
		assert.False(t, updated.IsAvailable)
	})

	t.Run("ownership mismatch does not leak existence", func(t *testing.T) {
		_, err := svc.Update(other.ID, item.ID, services.MenuItemInput{Name: "Hijack", Price: dec("1.00")})
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		err = svc.Delete(other.ID, item.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(owner.ID, item.ID))
		_, err := svc.GetByID(item.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestMenuService_PublicReads(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)

	owner := seedUser(t, db, "Olive Owner", models.RoleRestaurantStaff)
	restaurant := seedRestaurant(t, db, owner, "Pasta Place", "3.00", true)
	seedMenuItem(t, db, restaurant, "Pasta", "10.00", true)
	seedMenuItem(t, db, restaurant, "Salad", "5.00", false)

	t.Run("list includes unavailable items", func(t *testing.T) {
		items, err := svc.ListByRestaurant(restaurant.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		_, err := svc.ListByRestaurant(9999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
