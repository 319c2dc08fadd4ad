package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID        uint                `json:"restaurant_id" binding:"required"`
	DeliveryAddress     string              `json:"delivery_address" binding:"required"`
	PhoneNumber         string              `json:"phone_number"`
	SpecialInstructions string              `json:"special_instructions"`
	PaymentMethod       string              `json:"payment_method" binding:"required"`
	Items               []services.CartItem `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates a new order (customer only)
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderService.CreateOrder(customerID, services.CreateOrderInput{
		RestaurantID:        req.RestaurantID,
		Items:               req.Items,
		DeliveryAddress:     req.DeliveryAddress,
		PhoneNumber:         req.PhoneNumber,
		SpecialInstructions: req.SpecialInstructions,
		PaymentMethod:       req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns all orders for the logged-in customer, optionally
// filtered by status
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orders, err := orderService.GetUserOrders(customerID, models.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order of the logged-in customer
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.GetOrderByID(customerID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels an order (customer can cancel PENDING or CONFIRMED)
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.CancelOrder(customerID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}
