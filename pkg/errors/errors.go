package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common cases.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)

// AppError represents a structured application error.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput creates a validation error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// InsufficientStock creates an inventory shortfall error carrying the product
// name and the quantity still available. Callers detect it with
// errors.Is(err, ErrInsufficientStock) and present it as a stock warning
// rather than a generic rejection.
func InsufficientStock(productName string, requested, available int) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("insufficient stock for %s: requested %d, available %d", productName, requested, available),
		Err:     ErrInsufficientStock,
	}
}

// EmptyCart creates an empty-cart error, reported when checkout is attempted
// with nothing to pay for.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "cart is empty",
		Err:     ErrEmptyCart,
	}
}
