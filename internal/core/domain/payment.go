package domain

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING_PAYMENT"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusExpired   PaymentStatus = "EXPIRED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Payment is the obligation created for an order. Its amount must equal the
// order total at creation time and is checked again on settlement.
type Payment struct {
	ID                    int64
	OrderID               int64
	Number                PaymentNumber
	Method                string
	Amount                Money
	Status                PaymentStatus
	ExternalTransactionID string
	PaidAt                *time.Time
	ExpiredAt             time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewPayment builds a pending payment expiring after the given window.
func NewPayment(orderID int64, number PaymentNumber, amount Money, method string, expiresIn time.Duration) (*Payment, error) {
	if expiresIn <= 0 {
		return nil, ErrInvalidPaymentWindow
	}
	now := time.Now()
	return &Payment{
		OrderID:   orderID,
		Number:    number,
		Method:    method,
		Amount:    amount,
		Status:    PaymentStatusPending,
		ExpiredAt: now.Add(expiresIn),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkAsPaid settles the payment. Settling an already-paid payment is a no-op
// so repeated gateway deliveries stay harmless. The observed amount comes from
// the gateway, which reports whole currency units, so the check compares at
// that precision. The check and the status change are all-or-nothing: on
// mismatch nothing is mutated.
func (p *Payment) MarkAsPaid(externalTransactionID string, observed Money) error {
	if p.Status == PaymentStatusPaid {
		return nil
	}
	if p.Status != PaymentStatusPending {
		return &StatusTransitionError{Entity: "payment", From: string(p.Status), Action: "marked as paid"}
	}
	if !p.Amount.EqualUnits(observed) {
		return ErrAmountMismatch
	}
	now := time.Now()
	p.Status = PaymentStatusPaid
	p.ExternalTransactionID = externalTransactionID
	p.PaidAt = &now
	p.UpdatedAt = now
	return nil
}

// Cancel transitions PENDING_PAYMENT -> CANCELLED.
func (p *Payment) Cancel() error {
	if p.Status != PaymentStatusPending {
		return &StatusTransitionError{Entity: "payment", From: string(p.Status), Action: "cancelled"}
	}
	p.Status = PaymentStatusCancelled
	p.UpdatedAt = time.Now()
	return nil
}

// MarkExpired transitions PENDING_PAYMENT -> EXPIRED. Driven by the expiry
// sweeper, never by callbacks.
func (p *Payment) MarkExpired() error {
	if p.Status != PaymentStatusPending {
		return &StatusTransitionError{Entity: "payment", From: string(p.Status), Action: "expired"}
	}
	p.Status = PaymentStatusExpired
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

func (p *Payment) IsOverdue(now time.Time) bool {
	return now.After(p.ExpiredAt)
}
