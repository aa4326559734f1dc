// Package outbox delivers order-created events written during checkout. The
// dispatcher polls the outbox table and drives payment creation for orders
// whose synchronous payment insert did not happen, giving every order a
// payment even when the checkout transaction raced or a deploy mixed both
// creation paths. Delivery is at least once; the consumer is idempotent.
package outbox

import (
	"context"
	"time"

	"github.com/mimimart/backend/internal/adapter/config"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

type Dispatcher struct {
	repo     port.Repository
	payments port.PaymentService
	logger   *zap.Logger
	interval time.Duration
	batch    int
}

func NewDispatcher(cfg *config.Outbox, repo port.Repository, payments port.PaymentService, logger *zap.Logger) (*Dispatcher, error) {
	return &Dispatcher{
		repo:     repo,
		payments: payments,
		logger:   logger,
		interval: cfg.PollInterval,
		batch:    cfg.BatchSize,
	}, nil
}

// Run polls until the context is cancelled. A failed event stays unprocessed
// and is retried on the next poll.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := d.dispatchPending(ctx); err != nil {
				d.logger.Error("outbox dispatch", zap.Error(err))
			}
		case <-ctx.Done():
			d.logger.Debug("outbox dispatcher stopped")
			return
		}
	}
}

func (d *Dispatcher) dispatchPending(ctx context.Context) error {
	events, err := d.repo.PendingOrderEvents(ctx, d.batch)
	if err != nil {
		return err
	}

	for _, event := range events {
		if _, err := d.payments.CreatePayment(ctx, event.OrderNumber); err != nil {
			d.logger.Warn("order event delivery failed",
				zap.String("event", event.EventID),
				zap.String("order", event.OrderNumber.String()),
				zap.Error(err))
			continue
		}
		if err := d.repo.MarkOrderEventProcessed(ctx, event.EventID); err != nil {
			d.logger.Warn("mark order event processed",
				zap.String("event", event.EventID),
				zap.Error(err))
		}
	}

	return nil
}
