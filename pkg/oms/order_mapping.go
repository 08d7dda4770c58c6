package oms

import (
	"time"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

func (s *OMS) AddOrderToMap(order *model.Order) {
	s.orderIDMapping.Store(order.OrderID, order)
}

func (s *OMS) GetOrderByOrderID(orderID uint64) (*model.Order, error) {
	order, ok := s.orderIDMapping.Load(orderID)
	if !ok {
		return nil, errOrderIDNotFound
	}
	return order.(*model.Order), nil
}

func (s *OMS) DeleteOrderByOrderID(orderID uint64) {
	s.orderIDMapping.Delete(orderID)
}

// startCleaner drops terminal orders from the live map. Their events
// stay in the store; the id remains burned for the session.
func (s *OMS) startCleaner(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *OMS) cleanup() {
	s.orderIDMapping.Range(func(k, v any) bool {
		order := v.(*model.Order)
		if order.IsEnd() {
			s.DeleteOrderByOrderID(order.OrderID)
			s.eventstore.DeleteByOrderID(order.OrderID)
		}
		return true
	})
}
