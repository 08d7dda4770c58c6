package orderbook

import "testing"

func TestSimpleMatch(t *testing.T) {
	e := New("TEST")
	called := false
	e.RegisterTradeCallback(func(trades []Trade) {
		called = true
		if len(trades) != 1 {
			t.Fatalf("expected 1 trade, got %d", len(trades))
		}
		tr := trades[0]
		if tr.BuyOrderID != 2 || tr.SellOrderID != 1 {
			t.Errorf("incorrect order IDs in trade: %+v", tr)
		}
		if tr.Qty != 10 || tr.Price != 99 {
			t.Errorf("incorrect qty/price: %+v", tr)
		}
	})

	// Add SELL first, then BUY - should match at the resting price
	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 99, Qty: 10})
	mustSubmit(t, e, &Order{ID: 2, Side: Buy, Price: 100, Qty: 10})

	if !called {
		t.Fatal("trade callback not invoked")
	}
	if e.OpenOrders() != 0 {
		t.Errorf("expected empty book, got %d resting orders", e.OpenOrders())
	}
}

func TestNoMatchDueToPrice(t *testing.T) {
	e := New("TEST")
	e.RegisterTradeCallback(func(trades []Trade) {
		t.Fatalf("expected no match, got %d", len(trades))
	})

	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 10})
	mustSubmit(t, e, &Order{ID: 2, Side: Buy, Price: 98, Qty: 10})

	if bid, _ := e.BestBid(); bid != 98 {
		t.Errorf("expected best bid 98, got %d", bid)
	}
	if ask, _ := e.BestAsk(); ask != 100 {
		t.Errorf("expected best ask 100, got %d", ask)
	}
}

func TestPartialMatch(t *testing.T) {
	e := New("TEST")

	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 5})
	trades := mustSubmit(t, e, &Order{ID: 2, Side: Buy, Price: 101, Qty: 10})

	if len(trades) != 1 || trades[0].Qty != 5 {
		t.Fatalf("expected one trade of qty 5, got %+v", trades)
	}
	// remainder of the buy rests at its own limit price
	if e.DepthAt(Buy, 101) != 5 {
		t.Errorf("expected remainder 5 resting at 101, got %d", e.DepthAt(Buy, 101))
	}
	if e.Exists(1) {
		t.Error("fully filled sell should not rest")
	}
}

func TestDepthAfterFullFillOfHead(t *testing.T) {
	e := New("TEST")

	// two orders at the same level; only the head gets fully filled
	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 10})
	mustSubmit(t, e, &Order{ID: 2, Side: Sell, Price: 100, Qty: 5})

	trades := mustSubmit(t, e, &Order{ID: 3, Side: Buy, Price: 100, Qty: 10})
	if len(trades) != 1 || trades[0].SellOrderID != 1 {
		t.Fatalf("expected one fill against order 1, got %+v", trades)
	}

	if got := e.DepthAt(Sell, 100); got != 5 {
		t.Errorf("expected depth 5 after full fill of the head, got %d", got)
	}

	// the survivor still trades and empties the level
	trades = mustSubmit(t, e, &Order{ID: 4, Side: Buy, Price: 100, Qty: 5})
	if len(trades) != 1 || trades[0].SellOrderID != 2 {
		t.Fatalf("expected one fill against order 2, got %+v", trades)
	}
	if got := e.DepthAt(Sell, 100); got != 0 {
		t.Errorf("expected empty level, got depth %d", got)
	}
}

func TestFIFOMatch(t *testing.T) {
	e := New("TEST")

	// Two SELLs at the same price, earlier arrival first
	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 5})
	mustSubmit(t, e, &Order{ID: 2, Side: Sell, Price: 100, Qty: 5})

	trades := mustSubmit(t, e, &Order{ID: 3, Side: Buy, Price: 100, Qty: 10})
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].SellOrderID != 1 || trades[1].SellOrderID != 2 {
		t.Errorf("expected FIFO match order, got %+v", trades)
	}
}

func TestMultiLevelMatch(t *testing.T) {
	e := New("TEST")

	sells := []*Order{
		{ID: 1, Side: Sell, Price: 101, Qty: 5},
		{ID: 2, Side: Sell, Price: 102, Qty: 5},
		{ID: 3, Side: Sell, Price: 103, Qty: 5},
	}
	for _, o := range sells {
		mustSubmit(t, e, o)
	}

	trades := mustSubmit(t, e, &Order{ID: 4, Side: Buy, Price: 105, Qty: 15})
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].Price != 101 || trades[1].Price != 102 || trades[2].Price != 103 {
		t.Errorf("expected matching from best price upwards, got %+v", trades)
	}
	if e.OpenOrders() != 0 {
		t.Errorf("expected empty book, got %d resting orders", e.OpenOrders())
	}
}

func TestPricePriorityBeatsArrival(t *testing.T) {
	e := New("TEST")

	// Later buy at a better price matches before the earlier one
	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 5})
	mustSubmit(t, e, &Order{ID: 2, Side: Buy, Price: 101, Qty: 5})

	trades := mustSubmit(t, e, &Order{ID: 3, Side: Sell, Price: 100, Qty: 5})
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].BuyOrderID != 2 {
		t.Errorf("expected better-priced buy 2 to fill first, got %+v", trades[0])
	}
	if trades[0].Price != 101 {
		t.Errorf("trade price must be the resting order's price 101, got %d", trades[0].Price)
	}
	if !e.Exists(1) {
		t.Error("worse-priced buy should still rest")
	}
}

func TestPartialFillKeepsQueuePosition(t *testing.T) {
	e := New("TEST")

	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 10})
	mustSubmit(t, e, &Order{ID: 2, Side: Sell, Price: 100, Qty: 10})

	// Partially fill order 1; it must stay at the head of the queue
	mustSubmit(t, e, &Order{ID: 3, Side: Buy, Price: 100, Qty: 4})

	trades := mustSubmit(t, e, &Order{ID: 4, Side: Buy, Price: 100, Qty: 8})
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].SellOrderID != 1 || trades[0].Qty != 6 {
		t.Errorf("expected remainder of order 1 to fill first, got %+v", trades[0])
	}
	if trades[1].SellOrderID != 2 || trades[1].Qty != 2 {
		t.Errorf("expected order 2 to fill the rest, got %+v", trades[1])
	}
}

func TestRejectInvalidOrders(t *testing.T) {
	e := New("TEST")

	if _, err := e.Submit(&Order{ID: 1, Side: Buy, Price: 100, Qty: 0}); err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := e.Submit(&Order{ID: 1, Side: Buy, Price: 0, Qty: 10}); err != ErrInvalidPrice {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 10})
	if _, err := e.Submit(&Order{ID: 1, Side: Buy, Price: 100, Qty: 10}); err != ErrDuplicateOrder {
		t.Errorf("expected ErrDuplicateOrder, got %v", err)
	}
}

func TestHighVolumeOrders(t *testing.T) {
	e := New("TEST")
	trades := 0
	e.RegisterTradeCallback(func(results []Trade) {
		trades += len(results)
	})

	num := 10_000
	for i := 0; i < num; i++ {
		side := Buy
		if i%2 == 0 {
			side = Sell
		}
		mustSubmit(t, e, &Order{
			ID:    uint64(i + 1),
			Side:  side,
			Price: 100,
			Qty:   10,
		})
	}

	if trades != num/2 {
		t.Errorf("expected %d trades, got %d", num/2, trades)
	}
	if e.OpenOrders() != 0 {
		t.Errorf("expected empty book, got %d resting orders", e.OpenOrders())
	}
}

func mustSubmit(t *testing.T, e *Engine, o *Order) []Trade {
	t.Helper()
	trades, err := e.Submit(o)
	if err != nil {
		t.Fatalf("submit order %d: %v", o.ID, err)
	}
	return trades
}

func BenchmarkOrderBookMatch(b *testing.B) {
	e := New("TEST")

	for i := 0; i < 10_000; i++ {
		_, _ = e.Submit(&Order{
			ID:    uint64(i + 1),
			Side:  Sell,
			Price: int64(10000 + i%5),
			Qty:   10,
		})
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.Submit(&Order{
			ID:    uint64(20_000 + i),
			Side:  Buy,
			Price: 10001,
			Qty:   10,
		})
	}
}

func BenchmarkCancel(b *testing.B) {
	e := New("TEST")
	for i := 0; i < b.N; i++ {
		_, _ = e.Submit(&Order{
			ID:    uint64(i + 1),
			Side:  Buy,
			Price: int64(100 + i%100),
			Qty:   10,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Cancel(uint64(i + 1))
	}
}
