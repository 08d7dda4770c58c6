package orderbook

import "time"

type Side int8

const (
	Buy Side = iota
	Sell
)

func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Order is a resting or incoming limit order. Prices are integer ticks.
//
// A resting order doubles as its own position handle: the intrusive
// prev/next links and the level back-pointer make removal from the middle
// of a price level O(1) without scanning. The links are owned by the level
// holding the order and are nil while the order is not resting.
type Order struct {
	ID        uint64
	Side      Side
	Price     int64
	Qty       int64
	Seq       uint64 // arrival sequence, assigned by the engine
	Trader    string // opaque tag, no effect on matching
	Timestamp time.Time

	prev, next *Order
	level      *priceLevel
}
