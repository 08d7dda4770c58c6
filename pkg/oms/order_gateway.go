package oms

import (
	"context"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

type OrderGateway interface {
	Start(ctx context.Context) error

	// oms to client
	OnOrderReport(ctx context.Context, order model.Order)
}
