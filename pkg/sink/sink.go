package sink

import (
	"context"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// TradeSink receives executed trades in emission order. Ownership of the
// slice passes to the sink for the duration of the call only; sinks that
// keep trades must copy them.
type TradeSink interface {
	Publish(ctx context.Context, symbol string, trades []orderbook.Trade) error
}
