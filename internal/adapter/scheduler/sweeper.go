// Package scheduler runs the periodic maintenance jobs of the payment flow.
package scheduler

import (
	"context"
	"time"

	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

// Sweeper expires pending payments past their deadline and cancels the orders
// still waiting on them.
type Sweeper struct {
	payments port.PaymentService
	logger   *zap.Logger
	interval time.Duration
}

func NewSweeper(payments port.PaymentService, logger *zap.Logger, interval time.Duration) (*Sweeper, error) {
	return &Sweeper{
		payments: payments,
		logger:   logger,
		interval: interval,
	}, nil
}

// Run sweeps on every tick until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			expired, err := s.payments.ExpireOverduePayments(ctx)
			if err != nil {
				s.logger.Error("expire overdue payments", zap.Error(err))
				continue
			}
			if expired > 0 {
				s.logger.Info("expired overdue payments", zap.Int("count", expired))
			}
		case <-ctx.Done():
			s.logger.Debug("payment sweeper stopped")
			return
		}
	}
}
