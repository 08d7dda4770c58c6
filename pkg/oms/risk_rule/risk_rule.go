package riskrule

import "github.com/tradekit/matching-engine/pkg/oms/model"

// RiskRule vets an incoming order before it reaches the matching core.
// A non-nil error rejects the order; the core never sees it.
type RiskRule interface {
	Check(order *model.AddOrder) error
}
