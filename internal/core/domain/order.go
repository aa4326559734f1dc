package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// IsCancellable reports whether an order in this status may still be
// cancelled. Only orders awaiting payment can.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPaymentPending
}

type DeliveryMethod string

const (
	DeliveryMethodHome        DeliveryMethod = "HOME_DELIVERY"
	DeliveryMethodStorePickup DeliveryMethod = "STORE_PICKUP"
)

// DeliveryInfo is an immutable description of where and how an order ships.
type DeliveryInfo struct {
	ReceiverName    string
	ReceiverPhone   string
	ShippingAddress string
	Method          DeliveryMethod
	Note            string
}

func NewDeliveryInfo(name, phone, address string, method DeliveryMethod, note string) (DeliveryInfo, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" || strings.TrimSpace(address) == "" {
		return DeliveryInfo{}, ErrInvalidDeliveryInfo
	}
	switch method {
	case DeliveryMethodHome, DeliveryMethodStorePickup:
	default:
		return DeliveryInfo{}, fmt.Errorf("%w: unknown delivery method %q", ErrInvalidDeliveryInfo, method)
	}
	return DeliveryInfo{
		ReceiverName:    name,
		ReceiverPhone:   phone,
		ShippingAddress: address,
		Method:          method,
		Note:            note,
	}, nil
}

// OrderItem is an immutable line of an order. The subtotal is derived from
// the snapshot price and quantity at construction and never recomputed.
type OrderItem struct {
	ProductID int64
	Snapshot  ProductSnapshot
	Quantity  int
	Subtotal  Money
}

func NewOrderItem(productID int64, snapshot ProductSnapshot, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	subtotal, err := snapshot.Price.Multiply(quantity)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ProductID: productID,
		Snapshot:  snapshot,
		Quantity:  quantity,
		Subtotal:  subtotal,
	}, nil
}

// Order is the aggregate root of a purchase. Items and total are fixed at
// construction; only the status, the cancellation reason and updatedAt change
// afterwards, and only through the transition methods.
type Order struct {
	ID                 int64
	MemberID           int64
	Number             OrderNumber
	Status             OrderStatus
	Items              []OrderItem
	TotalAmount        Money
	Delivery           DeliveryInfo
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrder builds an order in PAYMENT_PENDING with the total computed from
// the item subtotals.
func NewOrder(memberID int64, number OrderNumber, items []OrderItem, delivery DeliveryInfo) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := ZeroMoney()
	for _, item := range items {
		sum, err := total.Add(item.Subtotal)
		if err != nil {
			return nil, err
		}
		total = sum
	}
	now := time.Now()
	return &Order{
		MemberID:    memberID,
		Number:      number,
		Status:      OrderStatusPaymentPending,
		Items:       append([]OrderItem(nil), items...),
		TotalAmount: total,
		Delivery:    delivery,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MarkAsPaid transitions PAYMENT_PENDING -> PAID.
func (o *Order) MarkAsPaid() error {
	if o.Status != OrderStatusPaymentPending {
		return &StatusTransitionError{Entity: "order", From: string(o.Status), Action: "marked as paid"}
	}
	o.Status = OrderStatusPaid
	o.UpdatedAt = time.Now()
	return nil
}

// Ship transitions PAID -> SHIPPED.
func (o *Order) Ship() error {
	if o.Status != OrderStatusPaid {
		return &StatusTransitionError{Entity: "order", From: string(o.Status), Action: "shipped"}
	}
	o.Status = OrderStatusShipped
	o.UpdatedAt = time.Now()
	return nil
}

// Complete transitions SHIPPED -> COMPLETED.
func (o *Order) Complete() error {
	if o.Status != OrderStatusShipped {
		return &StatusTransitionError{Entity: "order", From: string(o.Status), Action: "completed"}
	}
	o.Status = OrderStatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel transitions PAYMENT_PENDING -> CANCELLED and records the reason.
func (o *Order) Cancel(reason string) error {
	if !o.Status.IsCancellable() {
		return &StatusTransitionError{Entity: "order", From: string(o.Status), Action: "cancelled"}
	}
	if strings.TrimSpace(reason) == "" {
		return ErrBlankCancelReason
	}
	o.Status = OrderStatusCancelled
	o.CancellationReason = reason
	o.UpdatedAt = time.Now()
	return nil
}

// BelongsToMember is the ownership check every member-facing operation runs
// before touching the order.
func (o *Order) BelongsToMember(memberID int64) bool {
	return o.MemberID == memberID
}
