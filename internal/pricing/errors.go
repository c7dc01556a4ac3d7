package pricing

import "errors"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidDiscount = errors.New("invalid discount")
	ErrEmptyOrder      = errors.New("empty order")
)
