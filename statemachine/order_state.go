package statemachine

import (
	"food-ordering-api/apperr"
	"food-ordering-api/models"
)

// Guard is an extra ownership condition a rule requires beyond the actor's role.
type Guard int

const (
	// GuardNone requires only the actor's role.
	GuardNone Guard = iota
	// GuardPurchaser requires the actor to be the order's customer.
	GuardPurchaser
	// GuardRestaurantOwner requires the actor to own the order's restaurant.
	GuardRestaurantOwner
	// GuardAssignedCourier requires the actor to be the order's assigned delivery user.
	GuardAssignedCourier
)

// Rule defines a valid state change, who can perform it, and its side effect.
type Rule struct {
	From           models.OrderStatus `json:"from"`
	To             models.OrderStatus `json:"to"`
	Role           models.UserRole    `json:"role"`
	Guard          Guard              `json:"-"`
	AssignsCourier bool               `json:"assigns_courier,omitempty"`
}

// rules is the authoritative state machine definition. Anything not listed
// here is rejected.
var rules = []Rule{
	// Restaurant accepts, prepares and readies the order
	{From: models.StatusPending, To: models.StatusConfirmed, Role: models.RoleRestaurantStaff, Guard: GuardRestaurantOwner},
	{From: models.StatusPending, To: models.StatusRejected, Role: models.RoleRestaurantStaff, Guard: GuardRestaurantOwner},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Role: models.RoleRestaurantStaff, Guard: GuardRestaurantOwner},
	{From: models.StatusConfirmed, To: models.StatusReadyForPickup, Role: models.RoleRestaurantStaff, Guard: GuardRestaurantOwner},
	{From: models.StatusPreparing, To: models.StatusReadyForPickup, Role: models.RoleRestaurantStaff, Guard: GuardRestaurantOwner},
	// Courier claims the ready order, then delivers it
	{From: models.StatusReadyForPickup, To: models.StatusOutForDelivery, Role: models.RoleDeliveryPersonnel, AssignsCourier: true},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Role: models.RoleDeliveryPersonnel, Guard: GuardAssignedCourier},
	// Customer can back out before the kitchen starts
	{From: models.StatusPending, To: models.StatusCancelled, Role: models.RoleCustomer, Guard: GuardPurchaser},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Role: models.RoleCustomer, Guard: GuardPurchaser},
}

type ruleKey struct {
	From models.OrderStatus
	To   models.OrderStatus
	Role models.UserRole
}

// Lookup maps for O(1) validation
var (
	ruleMap = func() map[ruleKey]Rule {
		m := make(map[ruleKey]Rule, len(rules))
		for _, r := range rules {
			m[ruleKey{r.From, r.To, r.Role}] = r
		}
		return m
	}()
	rolesWithRules = func() map[models.UserRole]bool {
		m := make(map[models.UserRole]bool)
		for _, r := range rules {
			m[r.Role] = true
		}
		return m
	}()
)

// Lookup returns the rule governing the requested transition for the given
// role. A role that appears nowhere in the table gets an unauthorized error;
// a known role requesting an unlisted transition gets an invalid-transition
// error naming the current status, the requested status and the role.
func Lookup(from, to models.OrderStatus, role models.UserRole) (Rule, error) {
	if !rolesWithRules[role] {
		return Rule{}, apperr.NewUnauthorized("role " + string(role) + " may not update order status")
	}
	rule, ok := ruleMap[ruleKey{from, to, role}]
	if !ok {
		return Rule{}, apperr.NewInvalidStateTransition(string(from), string(to), string(role))
	}
	return rule, nil
}

// ValidTransitionsFrom returns all valid next states from a given state,
// regardless of role.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, r := range rules {
		if r.From == status && !seen[r.To] {
			nexts = append(nexts, r.To)
			seen[r.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// Rules returns the full state machine for documentation
func Rules() []Rule {
	return rules
}
