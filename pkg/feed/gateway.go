package feed

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradekit/matching-engine/pkg/oms"
	"github.com/tradekit/matching-engine/pkg/oms/model"
	"github.com/tradekit/matching-engine/pkg/orderbook"
)

// Gateway drives an OMS from a delimited text feed. It is the ingress
// collaborator the matching core assumes: parsing and validation happen
// here, the core only ever sees well-typed commands.
type Gateway struct {
	parser *Parser
	r      io.Reader
	symbol string
	oms    oms.IOMS
}

func NewGateway(r io.Reader, symbol string) *Gateway {
	return &Gateway{
		parser: NewParser(),
		r:      r,
		symbol: symbol,
	}
}

func (g *Gateway) AddOmsInstance(s oms.IOMS) {
	g.oms = s
}

// Start consumes the feed until EOF or ctx cancellation. Command-level
// rejections (duplicates, risk checks, cancel misses) are logged and do
// not stop the stream.
func (g *Gateway) Start(ctx context.Context) error {
	return g.parser.Run(ctx, g.r,
		func(cmd *Command) error {
			g.dispatch(ctx, cmd)
			return nil
		},
		func(line string, err error) {
			zap.S().Warnf("reject feed line %q: %v", line, err)
		})
}

func (g *Gateway) dispatch(ctx context.Context, cmd *Command) {
	switch cmd.Kind {
	case KindAdd:
		err := g.oms.AddOrder(ctx, &model.AddOrder{
			OrderID:      cmd.OrderID,
			Symbol:       g.symbol,
			Side:         toModelSide(cmd.Side),
			Price:        cmd.Price,
			Quantity:     decimal.NewFromInt(cmd.Qty),
			Trader:       cmd.Trader,
			TransactTime: cmd.Timestamp,
		})
		if err != nil {
			zap.S().Warnf("add order %d rejected: %v", cmd.OrderID, err)
		}
	case KindCancel:
		err := g.oms.CancelOrder(ctx, &model.CancelOrder{
			OrderID:      cmd.OrderID,
			TransactTime: cmd.Timestamp,
		})
		if err != nil {
			// cancel misses are expected: fills race cancels
			zap.S().Debugf("cancel order %d: %v", cmd.OrderID, err)
		}
	}
}

// OnOrderReport satisfies oms.OrderGateway; a text feed has no return
// channel, so reports go to the log.
func (g *Gateway) OnOrderReport(_ context.Context, order model.Order) {
	zap.S().Debugw("order report",
		"order_id", order.OrderID,
		"status", order.Status,
		"exec_type", order.ExecType,
		"cum_qty", order.CumQuantity.String(),
		"leaves_qty", order.LeavesQuantity.String(),
	)
}

func toModelSide(side orderbook.Side) model.OrderSide {
	if side == orderbook.Buy {
		return model.OrderSideBuy
	}
	return model.OrderSideSell
}
