package domain_test

import (
	"testing"
	"time"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func testPayment(t *testing.T) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment(42, "PAY20250101120000001", domain.MustMoney("200.00"), "ECPAY_Credit", 30*time.Minute)
	assert.NoError(t, err)
	return payment
}

func TestNewPayment(t *testing.T) {
	payment := testPayment(t)

	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.True(t, payment.IsPending())
	assert.False(t, payment.IsPaid())
	assert.True(t, payment.ExpiredAt.After(time.Now()))
	assert.Nil(t, payment.PaidAt)

	_, err := domain.NewPayment(42, "PAY1", domain.MustMoney("1.00"), "ECPAY_Credit", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentWindow)
}

func TestPayment_MarkAsPaid(t *testing.T) {
	t.Run("settles on matching amount", func(t *testing.T) {
		payment := testPayment(t)
		err := payment.MarkAsPaid("TX123", domain.MustMoney("200.00"))
		assert.NoError(t, err)
		assert.True(t, payment.IsPaid())
		assert.Equal(t, "TX123", payment.ExternalTransactionID)
		assert.NotNil(t, payment.PaidAt)
	})

	t.Run("second identical settlement is a no-op", func(t *testing.T) {
		payment := testPayment(t)
		assert.NoError(t, payment.MarkAsPaid("TX123", domain.MustMoney("200.00")))
		firstPaidAt := *payment.PaidAt

		assert.NoError(t, payment.MarkAsPaid("TX123", domain.MustMoney("200.00")))
		assert.True(t, payment.IsPaid())
		assert.Equal(t, firstPaidAt, *payment.PaidAt)
		assert.Equal(t, "TX123", payment.ExternalTransactionID)
	})

	t.Run("settles on whole-unit amount from the gateway", func(t *testing.T) {
		payment, err := domain.NewPayment(42, "PAY20250101120000001", domain.MustMoney("199.50"), "ECPAY_Credit", 30*time.Minute)
		assert.NoError(t, err)
		assert.NoError(t, payment.MarkAsPaid("TX123", domain.MustMoney("200")))
		assert.True(t, payment.IsPaid())
	})

	t.Run("amount mismatch leaves state untouched", func(t *testing.T) {
		payment := testPayment(t)
		err := payment.MarkAsPaid("TX123", domain.MustMoney("199.00"))
		assert.ErrorIs(t, err, domain.ErrAmountMismatch)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
		assert.Nil(t, payment.PaidAt)
		assert.Empty(t, payment.ExternalTransactionID)
	})

	t.Run("cancelled payment cannot settle", func(t *testing.T) {
		payment := testPayment(t)
		assert.NoError(t, payment.Cancel())
		err := payment.MarkAsPaid("TX123", domain.MustMoney("200.00"))
		assert.ErrorIs(t, err, domain.ErrStatusTransition)
	})
}

func TestPayment_Cancel(t *testing.T) {
	payment := testPayment(t)
	assert.NoError(t, payment.Cancel())
	assert.Equal(t, domain.PaymentStatusCancelled, payment.Status)

	assert.ErrorIs(t, payment.Cancel(), domain.ErrStatusTransition)
}

func TestPayment_MarkExpired(t *testing.T) {
	payment := testPayment(t)
	assert.NoError(t, payment.MarkExpired())
	assert.Equal(t, domain.PaymentStatusExpired, payment.Status)

	assert.ErrorIs(t, payment.MarkExpired(), domain.ErrStatusTransition)
}

func TestPayment_IsOverdue(t *testing.T) {
	payment := testPayment(t)
	assert.False(t, payment.IsOverdue(time.Now()))
	assert.True(t, payment.IsOverdue(payment.ExpiredAt.Add(time.Second)))
}
