package riskrule

import (
	"fmt"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

// QuantityRule rejects zero, negative and fractional quantities. The
// matching core only accepts whole positive units, so anything else is
// malformed input and stops here.
type QuantityRule struct{}

func (r *QuantityRule) Check(order *model.AddOrder) error {
	if order.Quantity.Sign() <= 0 {
		return fmt.Errorf("quantity %s must be positive", order.Quantity)
	}
	if !order.Quantity.IsInteger() {
		return fmt.Errorf("quantity %s must be a whole number of units", order.Quantity)
	}
	return nil
}
