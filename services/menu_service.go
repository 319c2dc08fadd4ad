package services

import (
	"food-ordering-api/apperr"
	"food-ordering-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuService manages a restaurant's menu catalog. Writes require the acting
// user to own the item's restaurant; a non-owner gets a not-found failure so
// item existence is not leaked. Reads are public.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// MenuItemInput carries the writable fields of a menu item.
type MenuItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	IsPopular   bool
	IsAvailable *bool
}

// Create adds a menu item to a restaurant the user owns.
func (s *MenuService) Create(userID, restaurantID uint, in MenuItemInput) (*models.MenuItem, error) {
	var restaurant models.Restaurant
	if err := s.db.Where("id = ? AND owner_id = ?", restaurantID, userID).First(&restaurant).Error; err != nil {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}

	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.NewInvalidInput("price must be greater than zero")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
		IsPopular:    in.IsPopular,
		IsAvailable:  available,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces a menu item's writable fields.
func (s *MenuService) Update(userID, menuItemID uint, in MenuItemInput) (*models.MenuItem, error) {
	item, err := s.findOwnedItem(userID, menuItemID)
	if err != nil {
		return nil, err
	}

	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.NewInvalidInput("price must be greater than zero")
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.ImageURL = in.ImageURL
	item.Category = in.Category
	item.IsPopular = in.IsPopular
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item. Existing orders keep their snapshot copies.
func (s *MenuService) Delete(userID, menuItemID uint) error {
	item, err := s.findOwnedItem(userID, menuItemID)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

// ListByRestaurant returns a restaurant's menu (public).
func (s *MenuService) ListByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var count int64
	if err := s.db.Model(&models.Restaurant{}).Where("id = ?", restaurantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}

	var items []models.MenuItem
	if err := s.db.Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns one menu item (public).
func (s *MenuService) GetByID(menuItemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, menuItemID).Error; err != nil {
		return nil, apperr.NewNotFound("menu item", menuItemID)
	}
	return &item, nil
}

// findOwnedItem loads an item and verifies the caller owns its restaurant.
// Ownership mismatch reads as not-found.
func (s *MenuService) findOwnedItem(userID, menuItemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, menuItemID).Error; err != nil {
		return nil, apperr.NewNotFound("menu item", menuItemID)
	}
	var count int64
	if err := s.db.Model(&models.Restaurant{}).
		Where("id = ? AND owner_id = ?", item.RestaurantID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.NewNotFound("menu item", menuItemID)
	}
	return &item, nil
}
