package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food-ordering-api/apperr"
	"food-ordering-api/config"
	"food-ordering-api/logger"
	"food-ordering-api/notify"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	orderService      *services.OrderService
	menuService       *services.MenuService
	restaurantService *services.RestaurantService
	dashboardService  *services.DashboardService
	log               *logger.Logger
)

// Setup wires the service layer into the handler package.
func Setup(db *gorm.DB, notifier *notify.Notifier, l *logger.Logger) {
	orderService = services.NewOrderService(db, notifier, config.TaxRate)
	menuService = services.NewMenuService(db)
	restaurantService = services.NewRestaurantService(db)
	dashboardService = services.NewDashboardService(db, l)
	log = l
}

// respondError maps the service error taxonomy to HTTP statuses. Anything
// unclassified becomes a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidStateTransition):
		var transition *apperr.InvalidStateTransitionError
		body := gin.H{"error": err.Error()}
		if errors.As(err, &transition) {
			body["current_status"] = transition.From
			body["requested_status"] = transition.To
			body["actor_role"] = transition.Role
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		log.Error("request_failed", "unexpected error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
