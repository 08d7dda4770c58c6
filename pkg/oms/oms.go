package oms

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	eventstore "github.com/tradekit/matching-engine/pkg/oms/event_store"
	"github.com/tradekit/matching-engine/pkg/oms/model"
	riskrule "github.com/tradekit/matching-engine/pkg/oms/risk_rule"
	"github.com/tradekit/matching-engine/pkg/orderbook"
	"github.com/tradekit/matching-engine/pkg/sink"
)

type Config struct {
	Symbol   string
	TickSize decimal.Decimal
}

// OMS is the session layer around one matching engine instance: it owns
// the engine, vets incoming orders, tracks order lifecycle state, emits
// events and hands trades to the registered sinks. The engine itself is
// only ever driven from here, preserving its single-owner contract.
type OMS struct {
	cfg          *Config
	orderGateway OrderGateway
	engine       *orderbook.Engine
	eventstore   eventstore.EventStore

	orderIDMapping sync.Map
	stopCh         chan struct{}

	rules []riskrule.RiskRule
	sinks []sink.TradeSink

	js          nats.JetStreamContext
	natsSubject string

	totalMatchQty   int64
	totalMatchCount int64
}

func NewOMS(cfg *Config, orderGateway OrderGateway) *OMS {
	s := &OMS{
		cfg:          cfg,
		orderGateway: orderGateway,
		engine:       orderbook.New(cfg.Symbol),
		eventstore:   eventstore.NewInMemoryEventStore(),
		stopCh:       make(chan struct{}),
		rules: []riskrule.RiskRule{
			&riskrule.QuantityRule{},
			riskrule.NewTickSizeRule(cfg.TickSize),
		},
	}
	return s
}

func (s *OMS) AddRiskRule(rule riskrule.RiskRule) {
	s.rules = append(s.rules, rule)
}

func (s *OMS) RegisterTradeSink(snk sink.TradeSink) {
	s.sinks = append(s.sinks, snk)
}

// SetEventStream enables JetStream publication of order events.
func (s *OMS) SetEventStream(js nats.JetStreamContext, subject string) {
	s.js = js
	s.natsSubject = subject
}

func (s *OMS) Start(ctx context.Context) error {
	go s.startCleaner(10 * time.Second)
	return s.orderGateway.Start(ctx)
}

func (s *OMS) Stop() {
	close(s.stopCh)
}

func (s *OMS) AddOrder(ctx context.Context, addOrder *model.AddOrder) error {
	if s.eventstore.Seen(addOrder.OrderID) {
		return errDuplicateOrder
	}

	order := &model.Order{}
	order.UpdateAddOrder(addOrder)

	for _, rule := range s.rules {
		if err := rule.Check(addOrder); err != nil {
			order.UpdateReject()
			s.emit(ctx, order)
			return fmt.Errorf("%w: %v", errRiskCheckFailed, err)
		}
	}

	s.AddOrderToMap(order)

	trades, err := s.engine.Submit(&orderbook.Order{
		ID:        order.OrderID,
		Side:      toBookSide(order.Side),
		Price:     s.toTicks(order.Price),
		Qty:       order.Quantity.IntPart(),
		Trader:    order.Trader,
		Timestamp: order.TransactTime,
	})
	if err != nil {
		s.DeleteOrderByOrderID(order.OrderID)
		order.UpdateReject()
		s.emit(ctx, order)
		return err
	}

	// book accepted -> pending new becomes new
	s.emit(ctx, order)

	s.processTrades(ctx, trades)

	return nil
}

func (s *OMS) CancelOrder(ctx context.Context, cancelOrder *model.CancelOrder) error {
	order, err := s.GetOrderByOrderID(cancelOrder.OrderID)
	if err != nil {
		return err
	}

	if !order.CanCancel() {
		return errInvalidOrderStatus
	}

	if !s.engine.Cancel(order.OrderID) {
		// lifecycle state said cancelable but the book disagrees
		return errOrderIDNotFound
	}

	order.UpdateCancelOrder()
	s.emit(ctx, order)

	return nil
}

func (s *OMS) processTrades(ctx context.Context, trades []orderbook.Trade) {
	for _, t := range trades {
		atomic.AddInt64(&s.totalMatchQty, t.Qty)
		if atomic.AddInt64(&s.totalMatchCount, 1)%10000 == 0 {
			zap.S().Infof("totalMatchCount=%d totalMatchQty=%d",
				atomic.LoadInt64(&s.totalMatchCount), atomic.LoadInt64(&s.totalMatchQty))
		}

		price := s.fromTicks(t.Price)
		qty := decimal.NewFromInt(t.Qty)

		for _, id := range []uint64{t.BuyOrderID, t.SellOrderID} {
			order, err := s.GetOrderByOrderID(id)
			if err != nil {
				zap.S().Errorf("matched orderID=%d not tracked", id)
				continue
			}
			order.UpdateFill(qty, price)
			s.emit(ctx, order)
		}
	}

	if len(trades) == 0 {
		return
	}
	for _, snk := range s.sinks {
		if err := snk.Publish(ctx, s.cfg.Symbol, trades); err != nil {
			zap.S().Errorf("trade sink publish fail: %v", err)
		}
	}
}

// emit records the order state change, publishes it and reports it to
// the gateway. The copy keeps later mutations out of stored events.
func (s *OMS) emit(ctx context.Context, order *model.Order) {
	bkOrder := *order
	ev := model.NewOrderEvent(bkOrder, time.Now())
	s.eventstore.AddEvent(ev)

	if s.js != nil {
		data, err := json.Marshal(ev)
		if err != nil {
			zap.S().Errorf("marshal order event: %v", err)
		} else if _, err := s.js.PublishAsync(s.natsSubject, data); err != nil {
			zap.S().Errorf("publish order event: %v", err)
		}
	}

	s.orderGateway.OnOrderReport(ctx, bkOrder)
}

func toBookSide(side model.OrderSide) orderbook.Side {
	if side == model.OrderSideBuy {
		return orderbook.Buy
	}
	return orderbook.Sell
}

func (s *OMS) toTicks(price decimal.Decimal) int64 {
	return price.Div(s.cfg.TickSize).IntPart()
}

func (s *OMS) fromTicks(ticks int64) decimal.Decimal {
	return decimal.NewFromInt(ticks).Mul(s.cfg.TickSize)
}

// BestBid returns the best resting buy price in decimal form.
func (s *OMS) BestBid() (decimal.Decimal, bool) {
	ticks, ok := s.engine.BestBid()
	if !ok {
		return decimal.Zero, false
	}
	return s.fromTicks(ticks), true
}

// BestAsk returns the best resting sell price in decimal form.
func (s *OMS) BestAsk() (decimal.Decimal, bool) {
	ticks, ok := s.engine.BestAsk()
	if !ok {
		return decimal.Zero, false
	}
	return s.fromTicks(ticks), true
}

// DepthAt reports aggregate resting quantity at an exact price.
func (s *OMS) DepthAt(side model.OrderSide, price decimal.Decimal) int64 {
	return s.engine.DepthAt(toBookSide(side), s.toTicks(price))
}

// OrderExists reports whether the order still rests in the book.
func (s *OMS) OrderExists(orderID uint64) bool {
	return s.engine.Exists(orderID)
}

// History returns the recorded event sequence of an order.
func (s *OMS) History(orderID uint64) []*model.OrderEvent {
	return s.eventstore.History(orderID)
}
