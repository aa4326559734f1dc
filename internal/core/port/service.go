package port

import (
	"context"

	"github.com/mimimart/backend/internal/core/domain"
)

// CheckoutRequest is the buyer's input to checkout: where to ship and how to
// pay. The items come from the member's cart, never from the request.
type CheckoutRequest struct {
	Delivery      domain.DeliveryInfo
	PaymentMethod string
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type CartService interface {
	GetCart(ctx context.Context, memberID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, memberID int64, productID int64, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, memberID int64, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, memberID int64, productID int64) (*domain.Cart, error)
	ClearCart(ctx context.Context, memberID int64) error
	// MergeGuestCart folds a guest cart into the member's cart. Every guest
	// product must exist in the catalog or the whole merge fails.
	MergeGuestCart(ctx context.Context, memberID int64, guestItems []domain.CartItem) (*domain.Cart, error)
}

type OrderService interface {
	// Checkout converts the member's cart into an order and its pending
	// payment in one transaction, then clears the cart.
	Checkout(ctx context.Context, memberID int64, req CheckoutRequest) (*domain.Order, *domain.Payment, error)
	GetOrder(ctx context.Context, memberID int64, number domain.OrderNumber) (*domain.Order, error)
	ListOrders(ctx context.Context, memberID int64) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, memberID int64, number domain.OrderNumber) error

	// Admin operations.
	GetOrderAdmin(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	ShipOrder(ctx context.Context, number domain.OrderNumber) error
	CompleteOrder(ctx context.Context, number domain.OrderNumber) error
	CancelOrderAdmin(ctx context.Context, number domain.OrderNumber, reason string) error
}

type PaymentService interface {
	// CreatePayment is the shared idempotent creation operation used by the
	// after-commit event path. An existing pending payment is returned
	// unchanged instead of creating a second one.
	CreatePayment(ctx context.Context, orderNumber domain.OrderNumber) (*domain.Payment, error)
	GetPayment(ctx context.Context, memberID int64, number domain.PaymentNumber) (*domain.Payment, error)
	// GatewayParams returns the signed form parameters the shop frontend
	// posts to the gateway to initiate payment.
	GatewayParams(ctx context.Context, memberID int64, number domain.PaymentNumber) (map[string]string, error)
	// HandleCallback applies one verified gateway notification. A nil return
	// means the delivery was handled and must be acknowledged positively,
	// including the duplicate and gateway-reported-failure cases.
	HandleCallback(ctx context.Context, params map[string]string) error
	// ExpireOverduePayments sweeps overdue pending payments, returning how
	// many were expired.
	ExpireOverduePayments(ctx context.Context) (int, error)
}
