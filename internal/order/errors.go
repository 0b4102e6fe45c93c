package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrInvalidStatus = errors.New("invalid order status")
)
