package feed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

type Kind int8

const (
	KindAdd Kind = iota
	KindCancel
)

// Command is one fully validated instruction decoded from the feed.
// Malformed lines never become Commands; the matching core can assume
// every field is populated.
type Command struct {
	Kind      Kind
	Timestamp time.Time
	OrderID   uint64
	Side      orderbook.Side
	Price     decimal.Decimal
	Qty       int64
	Trader    string
}
