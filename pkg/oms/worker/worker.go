package worker

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tradekit/matching-engine/pkg/oms/model"
	"github.com/tradekit/matching-engine/pkg/oms/repo"
)

// Worker drains order events off JetStream and persists them, keeping
// the write path out of the matching loop.
type Worker struct {
	orderEvent repo.IOrderEvent
}

func NewWorker(repo repo.IRepo) *Worker {
	return &Worker{
		orderEvent: repo.OrderEvent(),
	}
}

func (w *Worker) StartConsumer(ctx context.Context, js nats.JetStreamContext, subject, durable string) error {
	cons, err := js.PullSubscribe(subject, durable)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msgs, err := cons.Fetch(10)
		if err != nil {
			if err != nats.ErrTimeout {
				zap.S().Warnf("fetch error: %v", err)
			}
			continue
		}

		for _, msg := range msgs {
			var ev model.OrderEvent
			if err := json.Unmarshal(msg.Data, &ev); err != nil {
				zap.S().Warnf("unmarshal order event: %v", err)
				_ = msg.Ack()
				continue
			}
			if err := w.handleEvent(ctx, &ev); err != nil {
				zap.S().Warnf("handle order event: %v", err)
				continue
			}
			_ = msg.Ack()
		}
	}
}

func (w *Worker) handleEvent(ctx context.Context, ev *model.OrderEvent) error {
	_, err := w.orderEvent.Create(ctx, ev)
	return err
}
