package services

import (
	"food-ordering-api/apperr"
	"food-ordering-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestaurantService manages the restaurant directory. Any authenticated user
// may create a restaurant (open business rule); updates and deletes require
// ownership. Reads are public.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// RestaurantInput carries the writable fields of a restaurant.
type RestaurantInput struct {
	Name         string
	Cuisine      string
	Description  string
	Address      string
	Phone        string
	ImageURL     string
	DeliveryFee  decimal.Decimal
	DeliveryTime string
	PriceRange   string
	IsActive     *bool
}

func (s *RestaurantService) Create(userID uint, in RestaurantInput) (*models.Restaurant, error) {
	var owner models.User
	if err := s.db.First(&owner, userID).Error; err != nil {
		return nil, apperr.NewNotFound("user", userID)
	}

	if in.DeliveryFee.IsNegative() {
		return nil, apperr.NewInvalidInput("delivery fee cannot be negative")
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	restaurant := models.Restaurant{
		OwnerID:      owner.ID,
		Name:         in.Name,
		Cuisine:      in.Cuisine,
		Description:  in.Description,
		Address:      in.Address,
		Phone:        in.Phone,
		ImageURL:     in.ImageURL,
		DeliveryFee:  in.DeliveryFee,
		DeliveryTime: in.DeliveryTime,
		PriceRange:   in.PriceRange,
		IsActive:     active,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantService) Update(userID, restaurantID uint, in RestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.findOwned(userID, restaurantID)
	if err != nil {
		return nil, err
	}

	if in.DeliveryFee.IsNegative() {
		return nil, apperr.NewInvalidInput("delivery fee cannot be negative")
	}

	restaurant.Name = in.Name
	restaurant.Cuisine = in.Cuisine
	restaurant.Description = in.Description
	restaurant.Address = in.Address
	restaurant.Phone = in.Phone
	restaurant.ImageURL = in.ImageURL
	restaurant.DeliveryFee = in.DeliveryFee
	restaurant.DeliveryTime = in.DeliveryTime
	restaurant.PriceRange = in.PriceRange
	if in.IsActive != nil {
		restaurant.IsActive = *in.IsActive
	}
	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) Delete(userID, restaurantID uint) error {
	restaurant, err := s.findOwned(userID, restaurantID)
	if err != nil {
		return err
	}
	return s.db.Delete(restaurant).Error
}

// GetAll lists the directory (public).
func (s *RestaurantService) GetAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetByID returns the detail view including the menu (public).
func (s *RestaurantService) GetByID(restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Preload("MenuItems").First(&restaurant, restaurantID).Error; err != nil {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}
	return &restaurant, nil
}

// GetByOwner lists the restaurants owned by a user.
func (s *RestaurantService) GetByOwner(userID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Preload("MenuItems").Where("owner_id = ?", userID).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) findOwned(userID, restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}
	if restaurant.OwnerID != userID {
		return nil, apperr.NewAccessDenied("you do not own this restaurant")
	}
	return &restaurant, nil
}
