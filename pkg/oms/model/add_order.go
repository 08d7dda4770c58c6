package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddOrder struct {
	OrderID      uint64
	Symbol       string
	Side         OrderSide
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	Trader       string
	TransactTime time.Time
}

type CancelOrder struct {
	OrderID      uint64
	TransactTime time.Time
}
