package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders returns a restaurant's orders for its owner, with a
// per-status summary. Supports ?status= filtering.
func GetRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}

	orders, err := orderService.GetRestaurantOrders(ownerID, restaurantID, models.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus applies a state machine transition on behalf of the
// acting user. Used by restaurant staff to progress orders.
func UpdateOrderStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderService.UpdateStatus(userID, orderID, req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}
