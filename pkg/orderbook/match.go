package orderbook

import "time"

// Trade records one execution. The price is always the resting order's
// price; price improvement goes to the aggressor.
type Trade struct {
	BuyOrderID  uint64
	SellOrderID uint64
	Price       int64
	Qty         int64
	Timestamp   time.Time
}

// Engine is a single-instrument matching engine with price-time priority.
//
// It is strictly single-threaded: the caller owns the instance and feeds
// it one command at a time. Submit and Cancel run to completion, so a
// totally ordered command stream produces a deterministic trade stream
// and final book state.
type Engine struct {
	symbol string

	book   *book
	orders map[uint64]*Order // order index, the source of truth for existence

	seq       uint64
	callbacks []func([]Trade)
}

func New(symbol string) *Engine {
	return &Engine{
		symbol: symbol,
		book:   newBook(),
		orders: make(map[uint64]*Order),
	}
}

func (e *Engine) Symbol() string {
	return e.symbol
}

// RegisterTradeCallback adds a sink invoked with the trades of each
// Submit, in emission order, before Submit returns.
func (e *Engine) RegisterTradeCallback(fn func([]Trade)) {
	e.callbacks = append(e.callbacks, fn)
}

// Submit matches the incoming order against the opposite side and rests
// any remainder. Ownership of the order passes to the engine; the caller
// must not touch it afterwards.
func (e *Engine) Submit(o *Order) ([]Trade, error) {
	if o.Qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if o.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if _, ok := e.orders[o.ID]; ok {
		return nil, ErrDuplicateOrder
	}

	e.seq++
	o.Seq = e.seq

	trades := e.match(o)

	if o.Qty > 0 {
		e.book.insert(o)
		e.orders[o.ID] = o
	}

	if len(trades) > 0 {
		for _, cb := range e.callbacks {
			cb(trades)
		}
	}
	return trades, nil
}

// match sweeps the opposite side while prices cross, oldest order first
// at each level. A single incoming order may fill across several orders
// and several levels.
func (e *Engine) match(o *Order) []Trade {
	var trades []Trade

	for o.Qty > 0 {
		best, ok := e.book.best(o.Side.Opposite())
		if !ok || !crosses(o, best.price) {
			break
		}

		head := best.head
		if head == nil {
			panic("orderbook: empty level left in the book")
		}

		qty := min(o.Qty, head.Qty)
		o.Qty -= qty
		head.Qty -= qty
		// the level total always tracks the fill; unlink below only
		// accounts for the (now zero) remainder
		best.reduce(qty)

		trades = append(trades, e.trade(o, head, best.price, qty))

		if head.Qty == 0 {
			delete(e.orders, head.ID)
			e.book.remove(head)
		}
	}
	return trades
}

func (e *Engine) trade(aggressor, resting *Order, price, qty int64) Trade {
	t := Trade{
		Price:     price,
		Qty:       qty,
		Timestamp: aggressor.Timestamp,
	}
	if aggressor.Side == Buy {
		t.BuyOrderID, t.SellOrderID = aggressor.ID, resting.ID
	} else {
		t.BuyOrderID, t.SellOrderID = resting.ID, aggressor.ID
	}
	return t
}

// crosses reports whether the best opposite price is still eligible. The
// opposite side is sorted best first, so a failure here ends the sweep.
func crosses(o *Order, oppositePrice int64) bool {
	if o.Side == Buy {
		return oppositePrice <= o.Price
	}
	return oppositePrice >= o.Price
}

// Cancel removes a resting order in O(1). Unknown ids are an expected
// miss (already filled, already canceled, never existed) and leave the
// book untouched.
func (e *Engine) Cancel(orderID uint64) bool {
	o, ok := e.orders[orderID]
	if !ok {
		return false
	}
	e.book.remove(o)
	delete(e.orders, orderID)
	return true
}

// BestBid returns the highest resting buy price.
func (e *Engine) BestBid() (int64, bool) {
	level, ok := e.book.best(Buy)
	if !ok {
		return 0, false
	}
	return level.price, true
}

// BestAsk returns the lowest resting sell price.
func (e *Engine) BestAsk() (int64, bool) {
	level, ok := e.book.best(Sell)
	if !ok {
		return 0, false
	}
	return level.price, true
}

// DepthAt reports the aggregate resting quantity at an exact price.
func (e *Engine) DepthAt(s Side, price int64) int64 {
	return e.book.depthAt(s, price)
}

// Exists reports whether an order currently rests in the book.
func (e *Engine) Exists(orderID uint64) bool {
	_, ok := e.orders[orderID]
	return ok
}

// OpenOrders returns the number of resting orders.
func (e *Engine) OpenOrders() int {
	return len(e.orders)
}
