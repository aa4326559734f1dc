package domain_test

import (
	"testing"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func testDelivery(t *testing.T) domain.DeliveryInfo {
	t.Helper()
	info, err := domain.NewDeliveryInfo("Lin Hua", "0912345678", "No. 1, Section 1, Taipei", domain.DeliveryMethodHome, "")
	assert.NoError(t, err)
	return info
}

func testItems(t *testing.T) []domain.OrderItem {
	t.Helper()
	snapshot := domain.ProductSnapshot{Name: "keyboard", Price: domain.MustMoney("100.00"), Image: "kb.png"}
	item, err := domain.NewOrderItem(7, snapshot, 2)
	assert.NoError(t, err)
	return []domain.OrderItem{item}
}

func testOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(1, "ORD20250101120000000001", testItems(t), testDelivery(t))
	assert.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	order := testOrder(t)

	assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(domain.MustMoney("200.00")))
	assert.True(t, order.BelongsToMember(1))
	assert.False(t, order.BelongsToMember(2))
}

func TestNewOrder_TotalIsSumOfSubtotals(t *testing.T) {
	snapA := domain.ProductSnapshot{Name: "a", Price: domain.MustMoney("19.99")}
	snapB := domain.ProductSnapshot{Name: "b", Price: domain.MustMoney("5.25")}
	itemA, err := domain.NewOrderItem(1, snapA, 3)
	assert.NoError(t, err)
	itemB, err := domain.NewOrderItem(2, snapB, 2)
	assert.NoError(t, err)

	order, err := domain.NewOrder(1, "ORD1", []domain.OrderItem{itemA, itemB}, testDelivery(t))
	assert.NoError(t, err)

	expected := domain.ZeroMoney()
	for _, item := range order.Items {
		expected, err = expected.Add(item.Subtotal)
		assert.NoError(t, err)
	}
	assert.True(t, order.TotalAmount.Equal(expected))
}

func TestNewOrder_EmptyItems(t *testing.T) {
	_, err := domain.NewOrder(1, "ORD1", nil, testDelivery(t))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestOrder_Transitions(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		order := testOrder(t)
		assert.NoError(t, order.MarkAsPaid())
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
		assert.NoError(t, order.Ship())
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
		assert.NoError(t, order.Complete())
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	})

	t.Run("ship requires paid", func(t *testing.T) {
		order := testOrder(t)
		err := order.Ship()
		assert.ErrorIs(t, err, domain.ErrStatusTransition)
		assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
	})

	t.Run("complete requires shipped", func(t *testing.T) {
		order := testOrder(t)
		assert.NoError(t, order.MarkAsPaid())
		err := order.Complete()
		assert.ErrorIs(t, err, domain.ErrStatusTransition)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
	})

	t.Run("paid twice fails", func(t *testing.T) {
		order := testOrder(t)
		assert.NoError(t, order.MarkAsPaid())
		err := order.MarkAsPaid()
		assert.ErrorIs(t, err, domain.ErrStatusTransition)
		assert.Contains(t, err.Error(), string(domain.OrderStatusPaid))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels with reason", func(t *testing.T) {
		order := testOrder(t)
		assert.NoError(t, order.Cancel("changed my mind"))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, "changed my mind", order.CancellationReason)
	})

	t.Run("blank reason rejected", func(t *testing.T) {
		order := testOrder(t)
		err := order.Cancel("   ")
		assert.ErrorIs(t, err, domain.ErrBlankCancelReason)
		assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
	})

	t.Run("paid order not cancellable", func(t *testing.T) {
		order := testOrder(t)
		assert.NoError(t, order.MarkAsPaid())
		err := order.Cancel("too late")
		assert.ErrorIs(t, err, domain.ErrStatusTransition)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
		assert.Empty(t, order.CancellationReason)
	})
}

func TestNewOrderItem(t *testing.T) {
	snapshot := domain.ProductSnapshot{Name: "mug", Price: domain.MustMoney("3.50")}

	item, err := domain.NewOrderItem(9, snapshot, 4)
	assert.NoError(t, err)
	assert.True(t, item.Subtotal.Equal(domain.MustMoney("14.00")))

	_, err = domain.NewOrderItem(9, snapshot, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestNewDeliveryInfo(t *testing.T) {
	_, err := domain.NewDeliveryInfo("", "0912", "addr", domain.DeliveryMethodHome, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDeliveryInfo)

	_, err = domain.NewDeliveryInfo("a", "b", "c", "CARRIER_PIGEON", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDeliveryInfo)
}
