package orderbook

// priceLevel holds every resting order at one price on one side, in strict
// arrival order. head is the oldest order and matches first.
type priceLevel struct {
	price    int64
	head     *Order
	tail     *Order
	totalQty int64
	count    int
}

func (l *priceLevel) empty() bool {
	return l.count == 0
}

// enqueue appends at the tail. A partially filled order keeps its position;
// it is never re-queued.
func (l *priceLevel) enqueue(o *Order) {
	if l.tail == nil {
		l.head = o
		l.tail = o
	} else {
		o.prev = l.tail
		l.tail.next = o
		l.tail = o
	}
	o.level = l
	l.totalQty += o.Qty
	l.count++
}

// unlink removes o from anywhere in the queue in O(1).
func (l *priceLevel) unlink(o *Order) {
	if o.level != l {
		panic("orderbook: order unlinked from wrong level")
	}
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.prev, o.next, o.level = nil, nil, nil
	l.totalQty -= o.Qty
	l.count--
	if l.totalQty < 0 || l.count < 0 {
		panic("orderbook: price level quantity underflow")
	}
}

// reduce accounts for a partial fill of an order still resting in the level.
func (l *priceLevel) reduce(qty int64) {
	l.totalQty -= qty
	if l.totalQty < 0 {
		panic("orderbook: price level quantity underflow")
	}
}
