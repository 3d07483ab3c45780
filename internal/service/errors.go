package service

import (
	"errors"
	"fmt"
)

// ErrForbidden means the user is missing, or the membership is inactive or
// expired. The checkout never reaches the transaction in that case.
var ErrForbidden = errors.New("membership expired or user not found")

// InvalidRequestError is a malformed checkout request: empty line list, or a
// product id / quantity that is not a positive integer. It never opens a
// transaction.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// NotFoundError identifies a requested product that does not exist.
type NotFoundError struct {
	ProductID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError identifies a product whose locked stock cannot cover
// the requested quantity.
type InsufficientStockError struct {
	ProductID int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d", e.ProductID)
}
