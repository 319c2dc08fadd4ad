package apperr_test

import (
	"errors"
	"testing"

	"food-ordering-api/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := apperr.NewNotFound("order", 42)
	assert.Equal(t, "order not found: 42", err.Error())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = apperr.NewNotFound("user", nil)
	assert.Equal(t, "user not found", err.Error())
}

func TestInvalidInputError(t *testing.T) {
	err := apperr.NewInvalidInput("cart must contain at least one item")
	assert.Equal(t, "invalid input: cart must contain at least one item", err.Error())
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestOwnershipErrors(t *testing.T) {
	unauthorized := apperr.NewUnauthorized("you do not own this order's restaurant")
	assert.ErrorIs(t, unauthorized, apperr.ErrUnauthorized)

	denied := apperr.NewAccessDenied("you don't have permission to access this order")
	assert.ErrorIs(t, denied, apperr.ErrAccessDenied)

	// The two kinds stay distinguishable for the HTTP mapping
	assert.NotErrorIs(t, unauthorized, apperr.ErrAccessDenied)
	assert.NotErrorIs(t, denied, apperr.ErrUnauthorized)
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := apperr.NewInvalidStateTransition("DELIVERED", "CONFIRMED", "RESTAURANT_STAFF")
	assert.ErrorIs(t, err, apperr.ErrInvalidStateTransition)
	assert.Equal(t,
		"invalid state transition: DELIVERED -> CONFIRMED is not allowed for role RESTAURANT_STAFF",
		err.Error())

	var transition *apperr.InvalidStateTransitionError
	require.True(t, errors.As(err, &transition))
	assert.Equal(t, "DELIVERED", transition.From)
	assert.Equal(t, "CONFIRMED", transition.To)
	assert.Equal(t, "RESTAURANT_STAFF", transition.Role)
}

func TestInvalidStateError(t *testing.T) {
	err := apperr.NewInvalidState("order cannot be cancelled at this stage")
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
	assert.NotErrorIs(t, err, apperr.ErrInvalidStateTransition)
}
