package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

const (
	numOrders  = 1_000_000
	minPrice   = 10_000 // ticks
	maxPrice   = 20_000
	minQty     = 1
	maxQty     = 100
	cancelRate = 10 // one cancel per N adds
)

func randomOrder(id uint64, rng *rand.Rand) *orderbook.Order {
	side := orderbook.Buy
	if rng.Intn(2) == 0 {
		side = orderbook.Sell
	}
	return &orderbook.Order{
		ID:    id,
		Side:  side,
		Price: int64(rng.Intn(maxPrice-minPrice+1) + minPrice),
		Qty:   int64(rng.Intn(maxQty-minQty+1) + minQty),
	}
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	e := orderbook.New("BENCH")

	var trades, tradedQty int64
	e.RegisterTradeCallback(func(ts []orderbook.Trade) {
		trades += int64(len(ts))
		for _, t := range ts {
			tradedQty += t.Qty
		}
	})

	start := time.Now()
	for i := 0; i < numOrders; i++ {
		id := uint64(i + 1)
		if _, err := e.Submit(randomOrder(id, rng)); err != nil {
			log.Fatalf("submit %d: %v", id, err)
		}
		if i%cancelRate == 0 {
			e.Cancel(uint64(rng.Intn(i+1) + 1))
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("orders: %d in %v (%.0f ops/sec)\n",
		numOrders, elapsed, float64(numOrders)/elapsed.Seconds())
	fmt.Printf("trades: %d, traded qty: %d, resting: %d\n",
		trades, tradedQty, e.OpenOrders())
}
