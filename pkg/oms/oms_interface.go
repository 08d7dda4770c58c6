package oms

import (
	"context"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

type IOMS interface {
	AddOrder(ctx context.Context, addOrder *model.AddOrder) error
	CancelOrder(ctx context.Context, cancelOrder *model.CancelOrder) error
}
