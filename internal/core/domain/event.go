package domain

import "time"

// OrderCreatedEvent is the outbox record written in the checkout transaction.
// The dispatcher delivers it at least once; the consumer (payment creation)
// is idempotent.
type OrderCreatedEvent struct {
	EventID     string
	OrderNumber OrderNumber
	MemberID    int64
	TotalAmount Money
	CreatedAt   time.Time
}
