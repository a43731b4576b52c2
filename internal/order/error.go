package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("order has no items")
)
