package sink

import (
	"context"
	"encoding/json"

	kafkawrapper "github.com/tradekit/matching-engine/pkg/kafka_wrapper"
	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// KafkaSink publishes each trade as a JSON message keyed by symbol, so
// one instrument's executions stay ordered within a partition.
type KafkaSink struct {
	producer *kafkawrapper.Producer
	topic    string
}

func NewKafkaSink(producer *kafkawrapper.Producer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

type tradeMessage struct {
	Symbol      string `json:"symbol"`
	BuyOrderID  uint64 `json:"buy_order_id"`
	SellOrderID uint64 `json:"sell_order_id"`
	Price       int64  `json:"price"`
	Qty         int64  `json:"qty"`
	Timestamp   int64  `json:"ts_ms"`
}

func (s *KafkaSink) Publish(ctx context.Context, symbol string, trades []orderbook.Trade) error {
	key := kafkawrapper.HashKey(symbol)
	for _, t := range trades {
		msg := tradeMessage{
			Symbol:      symbol,
			BuyOrderID:  t.BuyOrderID,
			SellOrderID: t.SellOrderID,
			Price:       t.Price,
			Qty:         t.Qty,
			Timestamp:   t.Timestamp.UnixMilli(),
		}
		b, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if err := s.producer.Publish(ctx, s.topic, key, b); err != nil {
			return err
		}
	}
	return nil
}
