package outbox_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mimimart/backend/internal/adapter/config"
	"github.com/mimimart/backend/internal/adapter/outbox"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port/mock"
)

func testEvent() domain.OrderCreatedEvent {
	return domain.OrderCreatedEvent{
		EventID:     "11111111-2222-3333-4444-555555555555",
		OrderNumber: "ORD20250101120000000001",
		MemberID:    1,
		TotalAmount: domain.MustMoney("200.00"),
		CreatedAt:   time.Now(),
	}
}

func TestDispatcher_DeliversPendingEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := testEvent()
	done := make(chan struct{})

	repo := mock.NewMockRepository(ctrl)
	payments := mock.NewMockPaymentService(ctrl)

	repo.EXPECT().PendingOrderEvents(gomock.Any(), 50).
		Return([]domain.OrderCreatedEvent{event}, nil)
	payments.EXPECT().CreatePayment(gomock.Any(), event.OrderNumber).
		Return(&domain.Payment{}, nil)
	repo.EXPECT().MarkOrderEventProcessed(gomock.Any(), event.EventID).
		DoAndReturn(func(_ context.Context, _ string) error {
			close(done)
			return nil
		})
	repo.EXPECT().PendingOrderEvents(gomock.Any(), 50).Return(nil, nil).AnyTimes()

	logger, _ := zap.NewDevelopment()
	d, err := outbox.NewDispatcher(&config.Outbox{PollInterval: 5 * time.Millisecond, BatchSize: 50},
		repo, payments, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
	cancel()
}

func TestDispatcher_FailedDeliveryStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := testEvent()
	done := make(chan struct{})

	repo := mock.NewMockRepository(ctrl)
	payments := mock.NewMockPaymentService(ctrl)

	repo.EXPECT().PendingOrderEvents(gomock.Any(), 50).
		Return([]domain.OrderCreatedEvent{event}, nil)
	payments.EXPECT().CreatePayment(gomock.Any(), event.OrderNumber).
		DoAndReturn(func(_ context.Context, _ domain.OrderNumber) (*domain.Payment, error) {
			close(done)
			return nil, domain.ErrInternal
		})
	// the event must not be marked processed on failure
	repo.EXPECT().PendingOrderEvents(gomock.Any(), 50).Return(nil, nil).AnyTimes()

	logger, _ := zap.NewDevelopment()
	d, err := outbox.NewDispatcher(&config.Outbox{PollInterval: 5 * time.Millisecond, BatchSize: 50},
		repo, payments, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not attempted")
	}
	cancel()
}
