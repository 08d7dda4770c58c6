package orderbook

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid order quantity")
	ErrInvalidPrice    = errors.New("invalid order price")
	ErrDuplicateOrder  = errors.New("duplicate order id")
)
