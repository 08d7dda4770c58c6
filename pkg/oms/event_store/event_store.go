package eventstore

import "github.com/tradekit/matching-engine/pkg/oms/model"

// EventStore keeps the per-order event history. Seen is also the session's
// duplicate-ID guard: order ids are never reused, even after the order
// reaches a terminal state.
type EventStore interface {
	AddEvent(ev *model.OrderEvent)
	History(orderID uint64) []*model.OrderEvent
	Seen(orderID uint64) bool
	DeleteByOrderID(orderID uint64)
}
