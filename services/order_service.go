package services

import (
	"strings"
	"time"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/notify"
	"food-ordering-api/statemachine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// OrderService is the order lifecycle engine: it creates orders from cart
// lines, derives the financial fields and enforces the role-conditional
// status state machine.
type OrderService struct {
	db       *gorm.DB
	notifier *notify.Notifier
	taxRate  decimal.Decimal
}

func NewOrderService(db *gorm.DB, notifier *notify.Notifier, taxRate decimal.Decimal) *OrderService {
	return &OrderService{db: db, notifier: notifier, taxRate: taxRate}
}

// CartItem is one line of a submitted cart.
type CartItem struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	RestaurantID        uint
	Items               []CartItem
	DeliveryAddress     string
	PhoneNumber         string
	SpecialInstructions string
	PaymentMethod       string
}

// CreateOrder places a new order for the given customer. Unit prices are read
// from the current menu items, never from the client; the order and its items
// are persisted atomically and the initial status is always PENDING.
func (s *OrderService) CreateOrder(userID uint, in CreateOrderInput) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, apperr.NewInvalidInput("cart must contain at least one item")
	}

	payment := models.PaymentMethod(in.PaymentMethod)
	if !models.ValidPaymentMethod(payment) {
		return nil, apperr.NewInvalidInput("unrecognized payment method: " + in.PaymentMethod)
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, in.RestaurantID).Error; err != nil {
		return nil, apperr.NewNotFound("restaurant", in.RestaurantID)
	}
	if !restaurant.IsActive {
		return nil, apperr.NewInvalidInput("restaurant is not accepting orders")
	}

	// Validate cart lines concurrently; any failure aborts the whole order.
	menuItems := make([]models.MenuItem, len(in.Items))
	var g errgroup.Group
	for i, line := range in.Items {
		i, line := i, line
		g.Go(func() error {
			if line.Quantity < 1 {
				return apperr.NewInvalidInput("quantity must be at least 1")
			}
			var item models.MenuItem
			if err := s.db.First(&item, line.MenuItemID).Error; err != nil {
				return apperr.NewNotFound("menu item", line.MenuItemID)
			}
			if item.RestaurantID != restaurant.ID {
				return apperr.NewInvalidInput("menu item '" + item.Name + "' does not belong to this restaurant")
			}
			if !item.IsAvailable {
				return apperr.NewInvalidInput("menu item '" + item.Name + "' is not available")
			}
			menuItems[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Snapshot pricing: copy name and unit price so later menu edits do not
	// alter this order.
	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	for i, line := range in.Items {
		item := menuItems[i]
		lineSubtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineSubtotal)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID:          item.ID,
			Name:                item.Name,
			UnitPrice:           item.Price,
			Quantity:            line.Quantity,
			Subtotal:            lineSubtotal,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	tax := subtotal.Mul(s.taxRate).Round(2)
	deliveryFee := restaurant.DeliveryFee
	total := subtotal.Add(tax).Add(deliveryFee)

	order := models.Order{
		OrderNumber:         newOrderNumber(),
		CustomerID:          user.ID,
		RestaurantID:        restaurant.ID,
		Status:              models.StatusPending,
		Subtotal:            subtotal,
		DeliveryFee:         deliveryFee,
		Tax:                 tax,
		Total:               total,
		DeliveryAddress:     in.DeliveryAddress,
		PhoneNumber:         in.PhoneNumber,
		SpecialInstructions: in.SpecialInstructions,
		PaymentMethod:       payment,
		Items:               orderItems,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: user.ID,
			Note:      "Order placed by customer",
		}).Error
	}); err != nil {
		return nil, err
	}

	s.publish(notify.Event{
		Type:        notify.EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ToStatus:    models.StatusPending,
		ChangedBy:   user.ID,
	})

	return s.reloadOrder(order.ID)
}

// UpdateStatus applies a state machine transition on behalf of the acting
// user. The mutation is a status-guarded update: of two concurrent requests
// against the same prior status, exactly one wins and the loser fails with
// an invalid-transition error naming the post-transition state.
func (s *OrderService) UpdateStatus(userID, orderID uint, to models.OrderStatus, note string) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	var from models.OrderStatus
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Restaurant").First(&order, orderID).Error; err != nil {
			return apperr.NewNotFound("order", orderID)
		}
		from = order.Status

		rule, err := statemachine.Lookup(from, to, user.Role)
		if err != nil {
			return err
		}
		if err := checkGuard(rule, &order, user); err != nil {
			return err
		}

		updates := map[string]interface{}{"status": to}
		if rule.AssignsCourier {
			updates["delivery_user_id"] = user.ID
		}
		if to == models.StatusDelivered {
			now := time.Now()
			updates["completed_at"] = &now
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a concurrent transition; report against the state the
			// winner left behind.
			var current models.Order
			if err := tx.First(&current, order.ID).Error; err == nil {
				from = current.Status
			}
			return apperr.NewInvalidStateTransition(string(from), string(to), string(user.Role))
		}

		return tx.Create(&models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   to,
			ChangedBy:  user.ID,
			Note:       note,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.reloadOrder(orderID)
	if err != nil {
		return nil, err
	}

	eventType := notify.EventStatusChanged
	if to == models.StatusCancelled {
		eventType = notify.EventOrderCancelled
	}
	s.publish(notify.Event{
		Type:        eventType,
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		FromStatus:  from,
		ToStatus:    to,
		ChangedBy:   user.ID,
	})

	return updated, nil
}

// CancelOrder is the purchaser's cancellation shortcut. It applies the same
// state machine rule as UpdateStatus but reports a non-cancellable order as
// an invalid-state failure.
func (s *OrderService) CancelOrder(userID, orderID uint) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := s.db.Where("id = ? AND customer_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		return nil, apperr.NewNotFound("order", orderID)
	}

	if order.Status != models.StatusPending && order.Status != models.StatusConfirmed {
		return nil, apperr.NewInvalidState("order cannot be cancelled at this stage")
	}

	return s.UpdateStatus(userID, orderID, models.StatusCancelled, "Order cancelled by customer")
}

// AssignToDelivery lets a delivery user claim a ready order. The claim is a
// conditional update so that of two concurrent claimants exactly one wins.
func (s *OrderService) AssignToDelivery(userID, orderID uint) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDeliveryPersonnel {
		return nil, apperr.NewUnauthorized("only delivery personnel can accept orders for delivery")
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, apperr.NewNotFound("order", orderID)
	}
	if order.Status != models.StatusReadyForPickup {
		return nil, apperr.NewInvalidState("only orders that are ready for pickup can be accepted for delivery")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ? AND delivery_user_id IS NULL", order.ID, models.StatusReadyForPickup).
			Updates(map[string]interface{}{
				"status":           models.StatusOutForDelivery,
				"delivery_user_id": user.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NewInvalidState("order has already been claimed by another courier")
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: models.StatusReadyForPickup,
			ToStatus:   models.StatusOutForDelivery,
			ChangedBy:  user.ID,
			Note:       "Order accepted for delivery",
		}).Error
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.reloadOrder(orderID)
	if err != nil {
		return nil, err
	}

	s.publish(notify.Event{
		Type:        notify.EventStatusChanged,
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		FromStatus:  models.StatusReadyForPickup,
		ToStatus:    models.StatusOutForDelivery,
		ChangedBy:   user.ID,
	})

	return updated, nil
}

// GetDeliveryOrder is the relaxed read path for couriers: admins read any
// order; a courier reads an order that is ready for pickup (unclaimed,
// visible to everyone) or one assigned to them regardless of status.
func (s *OrderService) GetDeliveryOrder(userID, orderID uint) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	order, err := s.reloadOrder(orderID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin {
		return order, nil
	}
	if user.Role == models.RoleDeliveryPersonnel {
		assignedToUser := order.DeliveryUserID != nil && *order.DeliveryUserID == user.ID
		if order.Status == models.StatusReadyForPickup || assignedToUser {
			return order, nil
		}
	}
	return nil, apperr.NewAccessDenied("you don't have permission to access this order")
}

// GetOrderByID returns one of the customer's own orders.
func (s *OrderService) GetOrderByID(userID, orderID uint) (*models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := s.orderScope(s.db).
		Where("id = ? AND customer_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		return nil, apperr.NewNotFound("order", orderID)
	}
	return &order, nil
}

// GetUserOrders returns the customer's orders, optionally filtered by status.
func (s *OrderService) GetUserOrders(userID uint, status models.OrderStatus) ([]models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	query := s.orderScope(s.db).Where("customer_id = ?", user.ID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetRestaurantOrders returns a restaurant's orders for its owner, optionally
// filtered by status. Admins may read any restaurant's orders.
func (s *OrderService) GetRestaurantOrders(userID, restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}
	if restaurant.OwnerID != user.ID && user.Role != models.RoleAdmin {
		return nil, apperr.NewNotFound("restaurant", restaurantID)
	}

	query := s.orderScope(s.db).Where("restaurant_id = ?", restaurantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrdersByStatus returns every order in the given status, oldest first.
// Used by the delivery views for available and active orders.
func (s *OrderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	if err := s.orderScope(s.db).
		Where("status = ?", status).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetCourierOrders returns all orders assigned to the given courier.
func (s *OrderService) GetCourierOrders(userID uint) ([]models.Order, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := s.orderScope(s.db).
		Where("delivery_user_id = ?", user.ID).
		Order("updated_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) findUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperr.NewNotFound("user", userID)
	}
	return &user, nil
}

func (s *OrderService) orderScope(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Order{}).
		Preload("Items").
		Preload("Restaurant").
		Preload("Customer").
		Preload("DeliveryUser")
}

func (s *OrderService) reloadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.orderScope(s.db).
		Preload("Items.MenuItem").
		Preload("StatusHistory").
		First(&order, orderID).Error; err != nil {
		return nil, apperr.NewNotFound("order", orderID)
	}
	return &order, nil
}

func (s *OrderService) publish(e notify.Event) {
	if s.notifier != nil {
		s.notifier.Publish(e)
	}
}

func checkGuard(rule statemachine.Rule, order *models.Order, user *models.User) error {
	switch rule.Guard {
	case statemachine.GuardPurchaser:
		if order.CustomerID != user.ID {
			return apperr.NewUnauthorized("this order does not belong to you")
		}
	case statemachine.GuardRestaurantOwner:
		if order.Restaurant.OwnerID != user.ID {
			return apperr.NewUnauthorized("you do not own this order's restaurant")
		}
	case statemachine.GuardAssignedCourier:
		if order.DeliveryUserID == nil || *order.DeliveryUserID != user.ID {
			return apperr.NewUnauthorized("you are not the assigned courier for this order")
		}
	}
	return nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
