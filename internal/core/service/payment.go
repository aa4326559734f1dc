package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mimimart/backend/internal/core/domain"
	"go.uber.org/zap"
)

// defaultPaymentMethod is used when a payment is created outside checkout,
// where no method was chosen explicitly.
const defaultPaymentMethod = "ECPAY_Credit"

// expiredCancelReason is recorded on orders cancelled by the expiry sweep.
const expiredCancelReason = "payment expired"

// CreatePayment creates the pending payment for an order, or returns the one
// that already exists. Both the synchronous checkout path and the outbox
// dispatcher funnel through this guard, so at-least-once event delivery never
// produces a second pending payment.
func (s *Service) CreatePayment(ctx context.Context, orderNumber domain.OrderNumber) (*domain.Payment, error) {
	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, s.orderError(err)
	}

	existing, err := s.repo.GetPendingPaymentByOrderID(ctx, order.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get pending payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.Status != domain.OrderStatusPaymentPending {
		return nil, &domain.StatusTransitionError{Entity: "order", From: string(order.Status), Action: "billed"}
	}

	payment, err := domain.NewPayment(order.ID, s.numbers.PaymentNumber(), order.TotalAmount, defaultPaymentMethod, s.paymentTTL)
	if err != nil {
		return nil, err
	}

	payment, created, err := s.repo.CreatePaymentIfAbsent(ctx, payment)
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if created {
		s.logger.Info("payment created",
			zap.String("order", orderNumber.String()),
			zap.String("payment", payment.Number.String()))
	}

	return payment, nil
}

func (s *Service) GetPayment(ctx context.Context, memberID int64, number domain.PaymentNumber) (*domain.Payment, error) {
	payment, _, err := s.getOwnedPayment(ctx, memberID, number)
	return payment, err
}

// GatewayParams builds the signed parameter set the frontend posts to the
// gateway. Only a live pending payment can initiate a gateway transaction.
func (s *Service) GatewayParams(ctx context.Context, memberID int64, number domain.PaymentNumber) (map[string]string, error) {
	payment, order, err := s.getOwnedPayment(ctx, memberID, number)
	if err != nil {
		return nil, err
	}

	if !payment.IsPending() {
		return nil, &domain.StatusTransitionError{Entity: "payment", From: string(payment.Status), Action: "initiated"}
	}
	if payment.IsOverdue(time.Now()) {
		return nil, &domain.StatusTransitionError{Entity: "payment", From: string(domain.PaymentStatusExpired), Action: "initiated"}
	}

	params, err := s.gateway.PaymentParams(payment, itemName(order))
	if err != nil {
		s.logger.Error("Build gateway params", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return params, nil
}

// HandleCallback applies one gateway notification. A nil return means the
// delivery is acknowledged: settled, duplicate and gateway-reported-failure
// notifications all count as handled. Any error means the gateway should
// retry or alert.
func (s *Service) HandleCallback(ctx context.Context, params map[string]string) error {
	if !s.gateway.VerifyCallback(params) {
		s.logger.Warn("callback signature mismatch")
		return domain.ErrSignatureMismatch
	}

	cb := s.gateway.ParseCallback(params)

	number, err := domain.ParsePaymentNumber(cb.MerchantTradeNo)
	if err != nil {
		return domain.ErrPaymentNotFound
	}

	if !cb.Succeeded() {
		// The gateway reports a failed attempt. The payment stays pending so
		// the member can retry until it expires.
		s.logger.Info("gateway reported failed payment",
			zap.String("payment", number.String()),
			zap.String("rtnCode", cb.RtnCode),
			zap.String("rtnMsg", cb.RtnMsg))
		return nil
	}

	observed, err := domain.NewMoneyFromString(cb.TradeAmt)
	if err != nil {
		return domain.ErrAmountMismatch
	}

	_, err = s.repo.UpdatePaymentWithOrder(ctx, number, func(payment *domain.Payment, order *domain.Order) error {
		wasPaid := payment.IsPaid()
		if err := payment.MarkAsPaid(cb.TradeNo, observed); err != nil {
			return err
		}
		if wasPaid {
			// Duplicate delivery of a settlement already applied.
			return nil
		}
		return order.MarkAsPaid()
	})
	switch {
	case err == nil:
		s.logger.Info("payment settled",
			zap.String("payment", number.String()),
			zap.String("transaction", cb.TradeNo))
		return nil
	case errors.Is(err, domain.ErrDataNotFound):
		return domain.ErrPaymentNotFound
	case errors.Is(err, domain.ErrAmountMismatch):
		s.logger.Warn("callback amount mismatch",
			zap.String("payment", number.String()),
			zap.String("tradeAmt", cb.TradeAmt))
		return domain.ErrAmountMismatch
	case errors.Is(err, domain.ErrStatusTransition):
		s.logger.Warn("callback for non-settleable payment",
			zap.String("payment", number.String()),
			zap.Error(err))
		return err
	default:
		s.logger.Error("Handle callback", zap.Error(err))
		return domain.ErrInternal
	}
}

// ExpireOverduePayments expires every pending payment past its deadline and
// cancels the owning order while it is still cancellable. Failures on one
// payment do not stop the sweep.
func (s *Service) ExpireOverduePayments(ctx context.Context) (int, error) {
	overdue, err := s.repo.ListOverduePendingPayments(ctx, time.Now())
	if err != nil {
		s.logger.Error("List overdue payments", zap.Error(err))
		return 0, domain.ErrInternal
	}

	expired := 0
	for _, candidate := range overdue {
		_, err := s.repo.UpdatePaymentWithOrder(ctx, candidate.Number, func(payment *domain.Payment, order *domain.Order) error {
			if !payment.IsPending() {
				// Settled or cancelled between listing and locking.
				return nil
			}
			if err := payment.MarkExpired(); err != nil {
				return err
			}
			if order.Status.IsCancellable() {
				return order.Cancel(expiredCancelReason)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("Expire payment",
				zap.String("payment", candidate.Number.String()),
				zap.Error(err))
			continue
		}
		expired++
		s.logger.Info("payment expired", zap.String("payment", candidate.Number.String()))
	}

	return expired, nil
}

func (s *Service) getOwnedPayment(ctx context.Context, memberID int64, number domain.PaymentNumber) (*domain.Payment, *domain.Order, error) {
	payment, err := s.repo.GetPaymentByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil, domain.ErrPaymentNotFound
		}
		s.logger.Error("Get payment", zap.Error(err))
		return nil, nil, domain.ErrInternal
	}

	order, err := s.repo.GetOrderByID(ctx, payment.OrderID)
	if err != nil {
		s.logger.Error("Get order for payment", zap.Error(err))
		return nil, nil, domain.ErrInternal
	}
	if !order.BelongsToMember(memberID) {
		return nil, nil, domain.ErrPaymentNotFound
	}

	return payment, order, nil
}

// itemName renders the order lines in the gateway's ItemName format, one line
// per product separated by '#'.
func itemName(order *domain.Order) string {
	parts := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		parts = append(parts, fmt.Sprintf("%s x %d", item.Snapshot.Name, item.Quantity))
	}
	return strings.Join(parts, "#")
}
