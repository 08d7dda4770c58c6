package orderbook

import "github.com/tidwall/btree"

type priceLevels = btree.BTreeG[*priceLevel]

// book keeps one sorted level collection per side. Both sides sort best
// price first, so Min is always the level that matches next.
type book struct {
	bids *priceLevels // highest price first
	asks *priceLevels // lowest price first
}

func newBook() *book {
	return &book{
		bids: btree.NewBTreeG(func(a, b *priceLevel) bool { return a.price > b.price }),
		asks: btree.NewBTreeG(func(a, b *priceLevel) bool { return a.price < b.price }),
	}
}

func (b *book) side(s Side) *priceLevels {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// best returns the top-of-book level for the given side.
func (b *book) best(s Side) (*priceLevel, bool) {
	return b.side(s).Min()
}

// insert rests the order at the tail of its price level, creating the
// level if it does not exist yet.
func (b *book) insert(o *Order) {
	levels := b.side(o.Side)
	level, ok := levels.GetMut(&priceLevel{price: o.Price})
	if !ok {
		level = &priceLevel{price: o.Price}
		levels.Set(level)
	}
	level.enqueue(o)
}

// remove unlinks a resting order and drops its level once empty. An
// emptied level never stays in the book.
func (b *book) remove(o *Order) {
	level := o.level
	if level == nil {
		panic("orderbook: removing order that is not resting")
	}
	side := o.Side
	level.unlink(o)
	if level.empty() {
		if _, ok := b.side(side).Delete(level); !ok {
			panic("orderbook: resting order pointed at a level missing from the book")
		}
	}
}

// depthAt reports the aggregate resting quantity at an exact price.
func (b *book) depthAt(s Side, price int64) int64 {
	level, ok := b.side(s).Get(&priceLevel{price: price})
	if !ok {
		return 0
	}
	return level.totalQty
}
