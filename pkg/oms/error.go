package oms

import "errors"

var (
	errDuplicateOrder     = errors.New("duplicate order")
	errOrderIDNotFound    = errors.New("orderID not found")
	errInvalidOrderStatus = errors.New("invalid order status")
	errRiskCheckFailed    = errors.New("risk check failed")
)
