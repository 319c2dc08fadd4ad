package services

import (
	"time"

	"food-ordering-api/logger"
	"food-ordering-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService builds the delivery dashboard projection. It is a pure
// read-side aggregation: on any internal failure it returns a zeroed
// projection instead of propagating the error, so the view always renders.
type DashboardService struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func NewDashboardService(db *gorm.DB, log *logger.Logger) *DashboardService {
	return &DashboardService{db: db, log: log, now: time.Now}
}

// RecentDelivery is one row of the dashboard's recent-deliveries list.
type RecentDelivery struct {
	OrderID        uint            `json:"order_id"`
	RestaurantName string          `json:"restaurant_name"`
	CompletedAt    string          `json:"completed_at"`
	Earnings       decimal.Decimal `json:"earnings"`
}

// DeliveryDashboard is the aggregate view served to delivery personnel.
type DeliveryDashboard struct {
	ActiveDelivery     *models.Order    `json:"active_delivery"`
	DeliveredToday     int              `json:"delivered_today"`
	TotalEarningsToday decimal.Decimal  `json:"total_earnings_today"`
	IsActive           bool             `json:"is_active"`
	AvailableOrders    int              `json:"available_orders"`
	RecentDeliveries   []RecentDelivery `json:"recent_deliveries"`
}

// DeliveryDashboardFor assembles the dashboard. Today's window is the current
// calendar day in server-local time.
func (s *DashboardService) DeliveryDashboardFor(userID uint) DeliveryDashboard {
	dashboard, err := s.build()
	if err != nil {
		s.log.Error("dashboard_failed", "falling back to empty dashboard", err, "user_id", userID)
		return DeliveryDashboard{
			TotalEarningsToday: decimal.Zero,
			RecentDeliveries:   []RecentDelivery{},
		}
	}
	return dashboard
}

func (s *DashboardService) build() (DeliveryDashboard, error) {
	dashboard := DeliveryDashboard{
		IsActive:           true,
		TotalEarningsToday: decimal.Zero,
		RecentDeliveries:   []RecentDelivery{},
	}

	// Active delivery: first order currently out for delivery. No courier
	// filter at this layer.
	var active []models.Order
	if err := s.db.Preload("Restaurant").Preload("Items").
		Where("status = ?", models.StatusOutForDelivery).
		Order("created_at asc").
		Limit(1).
		Find(&active).Error; err != nil {
		return dashboard, err
	}
	if len(active) > 0 {
		dashboard.ActiveDelivery = &active[0]
	}

	start, end := s.todayWindow()
	var deliveredToday []models.Order
	if err := s.db.Preload("Restaurant").
		Where("status = ? AND created_at BETWEEN ? AND ?", models.StatusDelivered, start, end).
		Order("created_at desc").
		Find(&deliveredToday).Error; err != nil {
		return dashboard, err
	}

	dashboard.DeliveredToday = len(deliveredToday)
	for _, order := range deliveredToday {
		dashboard.TotalEarningsToday = dashboard.TotalEarningsToday.Add(order.Total)
	}

	for i, order := range deliveredToday {
		if i == 5 {
			break
		}
		dashboard.RecentDeliveries = append(dashboard.RecentDeliveries, RecentDelivery{
			OrderID:        order.ID,
			RestaurantName: order.Restaurant.Name,
			CompletedAt:    order.CreatedAt.Format(time.RFC3339),
			Earnings:       order.Total,
		})
	}

	var available int64
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.StatusReadyForPickup).
		Count(&available).Error; err != nil {
		return dashboard, err
	}
	dashboard.AvailableOrders = int(available)

	return dashboard, nil
}

func (s *DashboardService) todayWindow() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
