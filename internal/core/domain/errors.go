package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	ErrDuplicateVariation = errors.New("variation already exists")
	ErrVariationNotFound  = errors.New("variation not found")
	ErrInvalidVariation   = errors.New("variation size and color are required")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be positive")

	ErrEmptyCart = errors.New("cart is empty")

	ErrInvalidName = errors.New("name is required")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
