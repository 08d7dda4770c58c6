package riskrule

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

// TickSizeRule rejects prices that are not an exact multiple of the
// instrument tick. The matching core works in integer ticks, so an
// off-tick price has no representation there.
type TickSizeRule struct {
	tick decimal.Decimal
}

func NewTickSizeRule(tick decimal.Decimal) *TickSizeRule {
	return &TickSizeRule{tick: tick}
}

func (r *TickSizeRule) Check(order *model.AddOrder) error {
	if order.Price.Sign() <= 0 {
		return fmt.Errorf("price %s must be positive", order.Price)
	}
	if !order.Price.Mod(r.tick).IsZero() {
		return fmt.Errorf("price %s is not a multiple of tick %s", order.Price, r.tick)
	}
	return nil
}
