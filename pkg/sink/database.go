package sink

import (
	"context"

	"github.com/tradekit/matching-engine/pkg/oms/model"
	"github.com/tradekit/matching-engine/pkg/oms/repo"
	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// DatabaseSink persists executions through the trade repo.
type DatabaseSink struct {
	trades repo.ITrade
}

func NewDatabaseSink(r repo.IRepo) *DatabaseSink {
	return &DatabaseSink{trades: r.Trade()}
}

func (s *DatabaseSink) Publish(ctx context.Context, symbol string, trades []orderbook.Trade) error {
	records := make([]*model.TradeRecord, 0, len(trades))
	for _, t := range trades {
		records = append(records, &model.TradeRecord{
			Symbol:      symbol,
			BuyOrderID:  t.BuyOrderID,
			SellOrderID: t.SellOrderID,
			Price:       t.Price,
			Qty:         t.Qty,
			TradedAt:    t.Timestamp,
		})
	}
	_, err := s.trades.BulkCreate(ctx, records)
	return err
}
