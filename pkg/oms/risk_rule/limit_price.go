package riskrule

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

type priceBand struct {
	floor decimal.Decimal
	ceil  decimal.Decimal
}

// LimitPriceRule rejects orders priced outside the per-symbol band.
// Symbols without a band are unrestricted.
type LimitPriceRule struct {
	bands map[string]priceBand
}

func NewLimitPriceRule() *LimitPriceRule {
	return &LimitPriceRule{bands: make(map[string]priceBand)}
}

func (r *LimitPriceRule) SetBand(symbol string, floor, ceil decimal.Decimal) {
	r.bands[symbol] = priceBand{floor: floor, ceil: ceil}
}

func (r *LimitPriceRule) Check(order *model.AddOrder) error {
	band, ok := r.bands[order.Symbol]
	if !ok {
		return nil
	}
	if order.Price.LessThan(band.floor) || order.Price.GreaterThan(band.ceil) {
		return fmt.Errorf("price %s outside band [%s, %s]", order.Price, band.floor, band.ceil)
	}
	return nil
}
