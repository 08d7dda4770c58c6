package sink

import (
	"context"
	"sync"

	"github.com/gammazero/deque"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// Collector buffers trades in arrival order until a consumer drains
// them. It decouples the synchronous match loop from slower downstream
// publishers.
type Collector struct {
	mu     sync.Mutex
	trades deque.Deque[orderbook.Trade]
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Publish(_ context.Context, _ string, trades []orderbook.Trade) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range trades {
		c.trades.PushBack(t)
	}
	return nil
}

// Drain removes and returns up to max buffered trades, oldest first.
// max <= 0 drains everything.
func (c *Collector) Drain(max int) []orderbook.Trade {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.trades.Len()
	if max > 0 && max < n {
		n = max
	}
	if n == 0 {
		return nil
	}
	out := make([]orderbook.Trade, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, c.trades.PopFront())
	}
	return out
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.trades.Len()
}
