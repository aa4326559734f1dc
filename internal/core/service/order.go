package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

// memberCancelReason is recorded when a member cancels their own order.
const memberCancelReason = "cancelled by member"

// Checkout turns the member's cart into an order plus its pending payment.
// The order, its item snapshots, the payment, the outbox event and the cart
// cleanup commit in one transaction, so a failure anywhere leaves the cart
// untouched.
func (s *Service) Checkout(ctx context.Context, memberID int64, req port.CheckoutRequest) (*domain.Order, *domain.Payment, error) {
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, nil, domain.ErrBadRequest
	}

	cart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, nil, domain.ErrInternal
	}
	if cart.IsEmpty() {
		return nil, nil, domain.ErrEmptyCart
	}

	order, err := s.buildOrder(ctx, memberID, cart, req.Delivery)
	if err != nil {
		return nil, nil, err
	}

	order, payment, err := s.repo.CheckoutOrder(ctx, order, func(orderID int64) (*domain.Payment, error) {
		return domain.NewPayment(orderID, s.numbers.PaymentNumber(), order.TotalAmount, req.PaymentMethod, s.paymentTTL)
	})
	if err != nil {
		s.logger.Error("Checkout order", zap.Error(err))
		return nil, nil, domain.ErrInternal
	}

	s.logger.Info("order checked out",
		zap.String("order", order.Number.String()),
		zap.String("payment", payment.Number.String()),
		zap.String("total", order.TotalAmount.String()))

	return order, payment, nil
}

// buildOrder snapshots the cart's products into immutable order items. Every
// cart line must still resolve to a catalog product.
func (s *Service) buildOrder(ctx context.Context, memberID int64, cart *domain.Cart, delivery domain.DeliveryInfo) (*domain.Order, error) {
	lines := cart.Items()
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.repo.ListProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %d", domain.ErrProductNotFound, line.ProductID)
		}
		item, err := domain.NewOrderItem(line.ProductID, domain.SnapshotOf(product), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return domain.NewOrder(memberID, s.numbers.OrderNumber(), items, delivery)
}

func (s *Service) GetOrder(ctx context.Context, memberID int64, number domain.OrderNumber) (*domain.Order, error) {
	order, err := s.repo.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, s.orderError(err)
	}
	if !order.BelongsToMember(memberID) {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, memberID int64) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrdersByMember(ctx, memberID)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return orders, nil
}

// CancelOrder cancels a member's own order. The pending payment, when one
// exists, is cancelled in the same transaction so it can never settle later.
func (s *Service) CancelOrder(ctx context.Context, memberID int64, number domain.OrderNumber) error {
	_, err := s.repo.UpdateOrderByNumber(ctx, number, func(order *domain.Order, pending *domain.Payment) error {
		if !order.BelongsToMember(memberID) {
			return domain.ErrOrderNotFound
		}
		if err := order.Cancel(memberCancelReason); err != nil {
			return err
		}
		if pending != nil {
			return pending.Cancel()
		}
		return nil
	})
	if err != nil {
		return s.orderError(err)
	}
	return nil
}

func (s *Service) GetOrderAdmin(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	order, err := s.repo.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, s.orderError(err)
	}
	return order, nil
}

func (s *Service) ShipOrder(ctx context.Context, number domain.OrderNumber) error {
	_, err := s.repo.UpdateOrderByNumber(ctx, number, func(order *domain.Order, _ *domain.Payment) error {
		return order.Ship()
	})
	if err != nil {
		return s.orderError(err)
	}
	return nil
}

func (s *Service) CompleteOrder(ctx context.Context, number domain.OrderNumber) error {
	_, err := s.repo.UpdateOrderByNumber(ctx, number, func(order *domain.Order, _ *domain.Payment) error {
		return order.Complete()
	})
	if err != nil {
		return s.orderError(err)
	}
	return nil
}

func (s *Service) CancelOrderAdmin(ctx context.Context, number domain.OrderNumber, reason string) error {
	_, err := s.repo.UpdateOrderByNumber(ctx, number, func(order *domain.Order, pending *domain.Payment) error {
		if err := order.Cancel(reason); err != nil {
			return err
		}
		if pending != nil {
			return pending.Cancel()
		}
		return nil
	})
	if err != nil {
		return s.orderError(err)
	}
	return nil
}

// orderError translates storage errors and passes domain rule violations
// through unchanged.
func (s *Service) orderError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDataNotFound):
		return domain.ErrOrderNotFound
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrStatusTransition),
		errors.Is(err, domain.ErrBlankCancelReason):
		return err
	default:
		s.logger.Error("Order operation", zap.Error(err))
		return domain.ErrInternal
	}
}
