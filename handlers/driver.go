package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// GetDeliveryDashboard returns today's aggregate view for delivery personnel.
// The projection is fail-soft: it always renders, zeroed on internal failure.
func GetDeliveryDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	c.JSON(http.StatusOK, gin.H{"dashboard": dashboardService.DeliveryDashboardFor(userID)})
}

// GetAvailableOrders shows orders READY_FOR_PICKUP waiting for a courier
func GetAvailableOrders(c *gin.Context) {
	orders, err := orderService.GetOrdersByStatus(models.StatusReadyForPickup)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetActiveOrders shows orders currently out for delivery
func GetActiveOrders(c *gin.Context) {
	orders, err := orderService.GetOrdersByStatus(models.StatusOutForDelivery)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyDeliveries returns all orders assigned to the logged-in courier
func GetMyDeliveries(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := orderService.GetCourierOrders(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AcceptOrder claims a READY_FOR_PICKUP order for the logged-in courier and
// moves it to OUT_FOR_DELIVERY. At most one concurrent claimant wins.
func AcceptOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.AssignToDelivery(userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order accepted for delivery",
		"order":   order,
	})
}

// GetDeliveryOrder returns order details under the courier read policy:
// unclaimed ready orders are visible to everyone, claimed orders only to
// their courier, everything to admins.
func GetDeliveryOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.GetDeliveryOrder(userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeliverOrder transitions OUT_FOR_DELIVERY → DELIVERED for the assigned courier
func DeliverOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.UpdateStatus(userID, orderID, models.StatusDelivered, "Order delivered to customer")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order delivered successfully",
		"order":   order,
	})
}
