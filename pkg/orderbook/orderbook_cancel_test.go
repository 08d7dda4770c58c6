package orderbook

import "testing"

func TestCancelOrder(t *testing.T) {
	e := New("TEST")

	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 10})

	if !e.Cancel(1) {
		t.Fatal("expected cancel success")
	}
	if e.Exists(1) {
		t.Fatal("order should be removed from the index")
	}
	if _, ok := e.BestBid(); ok {
		t.Fatal("emptied level should be removed from the book")
	}
}

func TestCancelMissIsIdempotent(t *testing.T) {
	e := New("TEST")

	if e.Cancel(42) {
		t.Fatal("cancel of unknown order must report not found")
	}

	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 5})
	if !e.Cancel(1) {
		t.Fatal("expected cancel success")
	}
	// repeat cancel is an expected miss, not an error
	if e.Cancel(1) {
		t.Fatal("second cancel must report not found")
	}
	if e.OpenOrders() != 0 {
		t.Errorf("expected empty book, got %d resting orders", e.OpenOrders())
	}
}

func TestCancelFilledOrderMisses(t *testing.T) {
	e := New("TEST")

	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 10})
	mustSubmit(t, e, &Order{ID: 2, Side: Sell, Price: 100, Qty: 10})

	if e.Cancel(1) {
		t.Fatal("cancel racing a full fill must report not found")
	}
}

func TestCancelMiddleOfQueue(t *testing.T) {
	e := New("TEST")

	mustSubmit(t, e, &Order{ID: 1, Side: Sell, Price: 100, Qty: 5})
	mustSubmit(t, e, &Order{ID: 2, Side: Sell, Price: 100, Qty: 5})
	mustSubmit(t, e, &Order{ID: 3, Side: Sell, Price: 100, Qty: 5})

	if !e.Cancel(2) {
		t.Fatal("expected cancel success")
	}
	if e.DepthAt(Sell, 100) != 10 {
		t.Errorf("expected depth 10 after cancel, got %d", e.DepthAt(Sell, 100))
	}

	// FIFO order of the survivors is preserved
	trades := mustSubmit(t, e, &Order{ID: 4, Side: Buy, Price: 100, Qty: 10})
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].SellOrderID != 1 || trades[1].SellOrderID != 3 {
		t.Errorf("expected fills against 1 then 3, got %+v", trades)
	}
}

func TestCancelGeneratesNoTrade(t *testing.T) {
	e := New("TEST")
	e.RegisterTradeCallback(func(trades []Trade) {
		t.Fatalf("cancel must not emit trades, got %+v", trades)
	})

	mustSubmit(t, e, &Order{ID: 1, Side: Buy, Price: 100, Qty: 5})
	e.Cancel(1)
}
