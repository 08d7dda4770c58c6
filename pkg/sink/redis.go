package sink

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// LastPriceSink keeps the latest trade price per symbol in redis for
// market-data consumers. Only the final trade of a batch matters; the
// batch is already in emission order.
type LastPriceSink struct {
	client *redis.Client
}

func NewLastPriceSink(client *redis.Client) *LastPriceSink {
	return &LastPriceSink{client: client}
}

func lastPriceKey(symbol string) string {
	return "lastprice:" + symbol
}

func (s *LastPriceSink) Publish(ctx context.Context, symbol string, trades []orderbook.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	last := trades[len(trades)-1]
	return s.client.Set(ctx, lastPriceKey(symbol), strconv.FormatInt(last.Price, 10), 0).Err()
}

// LastPrice reads the cached price back, for tools and tests.
func (s *LastPriceSink) LastPrice(ctx context.Context, symbol string) (int64, error) {
	v, err := s.client.Get(ctx, lastPriceKey(symbol)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}
