package port

import (
	"context"
	"time"

	"github.com/mimimart/backend/internal/core/domain"
)

// CheckoutPaymentFn builds the payment for a freshly inserted order. It runs
// inside the checkout transaction, after the order row exists.
type CheckoutPaymentFn func(orderID int64) (*domain.Payment, error)

// UpdateOrderFn mutates an order and, when one exists, its pending payment.
// It runs inside a transaction holding row locks on both.
type UpdateOrderFn func(order *domain.Order, pendingPayment *domain.Payment) error

// UpdatePaymentFn mutates a payment and its owning order inside a single
// transaction holding row locks on both.
type UpdatePaymentFn func(payment *domain.Payment, order *domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Products
	ListProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)

	// Carts
	GetCart(ctx context.Context, memberID int64) (*domain.Cart, error)
	UpsertCartItem(ctx context.Context, memberID int64, item domain.CartItem) error
	RemoveCartItem(ctx context.Context, memberID int64, productID int64) error
	ReplaceCart(ctx context.Context, cart *domain.Cart) error
	ClearCart(ctx context.Context, memberID int64) error

	// Orders
	// CheckoutOrder atomically inserts the order with its items, creates the
	// payment built by newPayment (unless a pending payment already exists
	// for the order), writes the order-created outbox event and clears the
	// member's cart. Everything commits or nothing does.
	CheckoutOrder(ctx context.Context, order *domain.Order, newPayment CheckoutPaymentFn) (*domain.Order, *domain.Payment, error)
	GetOrderByNumber(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrdersByMember(ctx context.Context, memberID int64) ([]*domain.Order, error)
	UpdateOrderByNumber(ctx context.Context, number domain.OrderNumber, fn UpdateOrderFn) (*domain.Order, error)

	// Payments
	GetPaymentByNumber(ctx context.Context, number domain.PaymentNumber) (*domain.Payment, error)
	GetPendingPaymentByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error)
	// CreatePaymentIfAbsent inserts the payment unless the order already has
	// a pending one; it returns the surviving payment and whether an insert
	// happened.
	CreatePaymentIfAbsent(ctx context.Context, payment *domain.Payment) (*domain.Payment, bool, error)
	UpdatePaymentWithOrder(ctx context.Context, number domain.PaymentNumber, fn UpdatePaymentFn) (*domain.Payment, error)
	ListOverduePendingPayments(ctx context.Context, now time.Time) ([]*domain.Payment, error)

	// Outbox
	PendingOrderEvents(ctx context.Context, limit int) ([]domain.OrderCreatedEvent, error)
	MarkOrderEventProcessed(ctx context.Context, eventID string) error
}
