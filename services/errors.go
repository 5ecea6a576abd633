package services

import "errors"

// Expected, recoverable conditions. Controllers map these to HTTP statuses;
// anything else is a persistence failure and surfaces as 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTableNotFound      = errors.New("table not found")
	ErrProductUnavailable = errors.New("product not available")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrDuplicateName      = errors.New("name already in use")
	ErrInvalidPrice       = errors.New("price must not be negative")
)
