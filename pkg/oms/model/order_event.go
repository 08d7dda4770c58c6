package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderEvent is the flattened, persistence-friendly record of one order
// state change. Quantities are integer units and prices float64 here;
// the decimal originals stay on the session Order.
type OrderEvent struct {
	EventID     string        `gorm:"primaryKey"`
	OrderID     uint64        `gorm:"index"`
	Symbol      string
	Side        OrderSide
	ExecType    OrderExecType
	OrderStatus OrderStatus
	Qty         int64
	CumQty      int64
	LeavesQty   int64
	Price       float64
	LastQty     int64
	LastPrice   float64
	Trader      string
	Timestamp   time.Time
}

func (OrderEvent) TableName() string {
	return "order_events"
}

func NewOrderEvent(order Order, ts time.Time) *OrderEvent {
	return &OrderEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.OrderID,
		Symbol:      order.Symbol,
		Side:        order.Side,
		ExecType:    order.ExecType,
		OrderStatus: order.Status,
		Qty:         order.Quantity.IntPart(),
		CumQty:      order.CumQuantity.IntPart(),
		LeavesQty:   order.LeavesQuantity.IntPart(),
		Price:       order.Price.InexactFloat64(),
		LastQty:     order.LastQuantity.IntPart(),
		LastPrice:   order.LastPrice.InexactFloat64(),
		Trader:      order.Trader,
		Timestamp:   ts,
	}
}
