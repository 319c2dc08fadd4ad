package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type RestaurantRequest struct {
	Name         string          `json:"name" binding:"required"`
	Cuisine      string          `json:"cuisine"`
	Description  string          `json:"description"`
	Address      string          `json:"address" binding:"required"`
	Phone        string          `json:"phone"`
	ImageURL     string          `json:"image_url"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	DeliveryTime string          `json:"delivery_time"`
	PriceRange   string          `json:"price_range"`
	IsActive     *bool           `json:"is_active"`
}

func (r RestaurantRequest) toInput() services.RestaurantInput {
	return services.RestaurantInput{
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Description:  r.Description,
		Address:      r.Address,
		Phone:        r.Phone,
		ImageURL:     r.ImageURL,
		DeliveryFee:  r.DeliveryFee,
		DeliveryTime: r.DeliveryTime,
		PriceRange:   r.PriceRange,
		IsActive:     r.IsActive,
	}
}

// CreateRestaurant lets any authenticated user create a restaurant
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := restaurantService.Create(ownerID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// GetMyRestaurants lists the restaurants owned by the logged-in user
func GetMyRestaurants(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurants, err := restaurantService.GetByOwner(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// UpdateRestaurant updates restaurant details (owner only)
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := restaurantService.Update(ownerID, restaurantID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant (owner only)
func DeleteRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := restaurantService.Delete(ownerID, restaurantID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	IsPopular   bool            `json:"is_popular"`
	IsAvailable *bool           `json:"is_available"`
}

func (r MenuItemRequest) toInput() services.MenuItemInput {
	return services.MenuItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		IsPopular:   r.IsPopular,
		IsAvailable: r.IsAvailable,
	}
}

// AddMenuItem adds a new item to a restaurant's menu (owner only)
func AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := menuService.Create(ownerID, restaurantID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates a menu item (owner only)
func UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := menuService.Update(ownerID, itemID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item (owner only)
func DeleteMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	if err := menuService.Delete(ownerID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
