package eventstore

import (
	"sync"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

type InMemoryEventStore struct {
	mu     sync.RWMutex
	orders map[uint64][]*model.OrderEvent
	seen   map[uint64]bool
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		orders: make(map[uint64][]*model.OrderEvent),
		seen:   make(map[uint64]bool),
	}
}

func (s *InMemoryEventStore) AddEvent(ev *model.OrderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[ev.OrderID] = append(s.orders[ev.OrderID], ev)
	s.seen[ev.OrderID] = true
}

func (s *InMemoryEventStore) History(orderID uint64) []*model.OrderEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.orders[orderID]
	out := make([]*model.OrderEvent, len(events))
	copy(out, events)
	return out
}

func (s *InMemoryEventStore) Seen(orderID uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.seen[orderID]
}

// DeleteByOrderID drops the history but keeps the id marked as seen, so
// a reused id still gets rejected after cleanup.
func (s *InMemoryEventStore) DeleteByOrderID(orderID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.orders, orderID)
}
