package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "New"
	OrderStatusPartiallyFilled OrderStatus = "PartiallyFilled"
	OrderStatusFilled          OrderStatus = "Filled"
	OrderStatusCanceled        OrderStatus = "Canceled"
	OrderStatusRejected        OrderStatus = "Rejected"
)

type OrderExecType string

const (
	ExecTypeNew      OrderExecType = "New"
	ExecTypeCanceled OrderExecType = "Canceled"
	ExecTypeRejected OrderExecType = "Rejected"
	ExecTypeTrade    OrderExecType = "Trade"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// Order is the session-level view of an order: decimal prices, running
// fill state, lifecycle status. The matching core keeps its own compact
// representation; this one exists for reports and persistence.
type Order struct {
	OrderID      uint64
	Symbol       string
	Side         OrderSide
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	Trader       string
	TransactTime time.Time

	Status         OrderStatus
	ExecType       OrderExecType
	CumQuantity    decimal.Decimal
	LeavesQuantity decimal.Decimal
	LastQuantity   decimal.Decimal
	LastPrice      decimal.Decimal
}

func (o *Order) UpdateAddOrder(add *AddOrder) {
	o.OrderID = add.OrderID
	o.Symbol = add.Symbol
	o.Side = add.Side
	o.Price = add.Price
	o.Quantity = add.Quantity
	o.Trader = add.Trader
	o.TransactTime = add.TransactTime
	o.Status = OrderStatusNew
	o.ExecType = ExecTypeNew
	o.CumQuantity = decimal.Zero
	o.LeavesQuantity = add.Quantity
}

func (o *Order) UpdateCancelOrder() {
	o.Status = OrderStatusCanceled
	o.ExecType = ExecTypeCanceled
	o.LeavesQuantity = decimal.Zero
}

func (o *Order) UpdateReject() {
	o.Status = OrderStatusRejected
	o.ExecType = ExecTypeRejected
	o.LeavesQuantity = decimal.Zero
}

// UpdateFill applies one execution to the running totals.
func (o *Order) UpdateFill(qty, price decimal.Decimal) {
	o.ExecType = ExecTypeTrade
	o.LastQuantity = qty
	o.LastPrice = price
	o.CumQuantity = o.CumQuantity.Add(qty)
	o.LeavesQuantity = o.Quantity.Sub(o.CumQuantity)
	if o.LeavesQuantity.Sign() > 0 {
		o.Status = OrderStatusPartiallyFilled
	} else {
		o.Status = OrderStatusFilled
	}
}

func (o *Order) CanCancel() bool {
	switch o.Status {
	case OrderStatusNew, OrderStatusPartiallyFilled:
		return true
	}
	return false
}

// IsEnd reports whether the order reached a terminal status.
func (o *Order) IsEnd() bool {
	switch o.Status {
	case OrderStatusFilled, OrderStatusCanceled, OrderStatusRejected:
		return true
	}
	return false
}
