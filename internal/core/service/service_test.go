package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
	"github.com/mimimart/backend/internal/core/port/mock"
	"github.com/mimimart/backend/internal/core/service"
)

type prepareMocks func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource)

const (
	memberID      = int64(1)
	orderNumber   = domain.OrderNumber("ORD20250101120000000001")
	paymentNumber = domain.PaymentNumber("PAY20250101120000001")
)

func newTestService(t *testing.T, prepare prepareMocks) *service.Service {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock.NewMockRepository(ctrl)
	gateway := mock.NewMockPaymentGateway(ctrl)
	numbers := mock.NewMockNumberSource(ctrl)
	if prepare != nil {
		prepare(repo, gateway, numbers)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, gateway, numbers, logger, 30*time.Minute)
	require.NoError(t, err)
	return s
}

func testProducts() map[int64]domain.Product {
	return map[int64]domain.Product{
		100: {ID: 100, Name: "Widget", Price: domain.MustMoney("100.00"), ImageURL: "widget.png"},
		200: {ID: 200, Name: "Gadget", Price: domain.MustMoney("50.00"), ImageURL: "gadget.png"},
	}
}

func testCart(t *testing.T, items ...domain.CartItem) *domain.Cart {
	t.Helper()
	cart, err := domain.ReconstructCart(memberID, items)
	require.NoError(t, err)
	return cart
}

func testDelivery(t *testing.T) domain.DeliveryInfo {
	t.Helper()
	delivery, err := domain.NewDeliveryInfo("Alex", "0912345678", "1 Market St", domain.DeliveryMethodHome, "")
	require.NoError(t, err)
	return delivery
}

func testOrder(t *testing.T) *domain.Order {
	t.Helper()
	item, err := domain.NewOrderItem(100, domain.ProductSnapshot{Name: "Widget", Price: domain.MustMoney("100.00")}, 2)
	require.NoError(t, err)
	order, err := domain.NewOrder(memberID, orderNumber, []domain.OrderItem{item}, testDelivery(t))
	require.NoError(t, err)
	order.ID = 7
	return order
}

func testPendingPayment(t *testing.T) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment(7, paymentNumber, domain.MustMoney("200.00"), "ECPAY_Credit", 30*time.Minute)
	require.NoError(t, err)
	payment.ID = 3
	return payment
}

func TestService_Checkout(t *testing.T) {
	delivery := testDelivery(t)
	req := port.CheckoutRequest{Delivery: delivery, PaymentMethod: "ECPAY_Credit"}

	t.Run("checkout creates order and payment", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetCart(gomock.Any(), memberID).
				Return(testCart(t, domain.CartItem{ProductID: 100, Quantity: 2}), nil)
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{100}).
				Return(testProducts(), nil)
			numbers.EXPECT().OrderNumber().Return(orderNumber)
			numbers.EXPECT().PaymentNumber().Return(paymentNumber)
			repo.EXPECT().CheckoutOrder(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, order *domain.Order, newPayment port.CheckoutPaymentFn) (*domain.Order, *domain.Payment, error) {
					order.ID = 7
					payment, err := newPayment(order.ID)
					if err != nil {
						return nil, nil, err
					}
					return order, payment, nil
				})
		})

		order, payment, err := s.Checkout(context.Background(), memberID, req)

		require.NoError(t, err)
		assert.Equal(t, orderNumber, order.Number)
		assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
		assert.True(t, order.TotalAmount.Equal(domain.MustMoney("200.00")))
		assert.Equal(t, paymentNumber, payment.Number)
		assert.Equal(t, int64(7), payment.OrderID)
		assert.True(t, payment.Amount.Equal(order.TotalAmount))
	})

	t.Run("empty cart cannot check out", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetCart(gomock.Any(), memberID).Return(testCart(t), nil)
		})

		_, _, err := s.Checkout(context.Background(), memberID, req)

		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("cart line without catalog product fails", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetCart(gomock.Any(), memberID).
				Return(testCart(t, domain.CartItem{ProductID: 999, Quantity: 1}), nil)
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{999}).
				Return(map[int64]domain.Product{}, nil)
		})

		_, _, err := s.Checkout(context.Background(), memberID, req)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("blank payment method is rejected", func(t *testing.T) {
		s := newTestService(t, nil)

		_, _, err := s.Checkout(context.Background(), memberID, port.CheckoutRequest{Delivery: delivery})

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestService_HandleCallback(t *testing.T) {
	successParams := map[string]string{
		"MerchantTradeNo": paymentNumber.String(),
		"TradeNo":         "TX777",
		"RtnCode":         "1",
		"TradeAmt":        "200",
		"CheckMacValue":   "ABC",
	}
	successCallback := port.GatewayCallback{
		MerchantTradeNo: paymentNumber.String(),
		TradeNo:         "TX777",
		RtnCode:         "1",
		TradeAmt:        "200",
	}

	t.Run("settles payment and order", func(t *testing.T) {
		payment := testPendingPayment(t)
		order := testOrder(t)

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(true)
			gateway.EXPECT().ParseCallback(successParams).Return(successCallback)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
					if err := fn(payment, order); err != nil {
						return nil, err
					}
					return payment, nil
				})
		})

		err := s.HandleCallback(context.Background(), successParams)

		require.NoError(t, err)
		assert.True(t, payment.IsPaid())
		assert.Equal(t, "TX777", payment.ExternalTransactionID)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
	})

	t.Run("duplicate delivery leaves shipped order alone", func(t *testing.T) {
		payment := testPendingPayment(t)
		order := testOrder(t)
		require.NoError(t, payment.MarkAsPaid("TX777", domain.MustMoney("200")))
		require.NoError(t, order.MarkAsPaid())
		require.NoError(t, order.Ship())
		firstPaidAt := *payment.PaidAt

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(true)
			gateway.EXPECT().ParseCallback(successParams).Return(successCallback)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
					if err := fn(payment, order); err != nil {
						return nil, err
					}
					return payment, nil
				})
		})

		err := s.HandleCallback(context.Background(), successParams)

		require.NoError(t, err)
		assert.Equal(t, firstPaidAt, *payment.PaidAt)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
	})

	t.Run("signature mismatch is rejected", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(false)
		})

		err := s.HandleCallback(context.Background(), successParams)

		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("amount mismatch does not settle", func(t *testing.T) {
		payment := testPendingPayment(t)
		order := testOrder(t)
		mismatch := port.GatewayCallback{
			MerchantTradeNo: paymentNumber.String(),
			TradeNo:         "TX777",
			RtnCode:         "1",
			TradeAmt:        "50",
		}

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(true)
			gateway.EXPECT().ParseCallback(successParams).Return(mismatch)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
					return nil, fn(payment, order)
				})
		})

		err := s.HandleCallback(context.Background(), successParams)

		assert.ErrorIs(t, err, domain.ErrAmountMismatch)
		assert.True(t, payment.IsPending())
		assert.Equal(t, domain.OrderStatusPaymentPending, order.Status)
	})

	t.Run("gateway-reported failure is acknowledged without settling", func(t *testing.T) {
		failed := port.GatewayCallback{
			MerchantTradeNo: paymentNumber.String(),
			RtnCode:         "0",
			RtnMsg:          "card declined",
		}

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(true)
			gateway.EXPECT().ParseCallback(successParams).Return(failed)
		})

		err := s.HandleCallback(context.Background(), successParams)

		assert.NoError(t, err)
	})

	t.Run("unknown payment number", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			gateway.EXPECT().VerifyCallback(successParams).Return(true)
			gateway.EXPECT().ParseCallback(successParams).Return(successCallback)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				Return(nil, domain.ErrDataNotFound)
		})

		err := s.HandleCallback(context.Background(), successParams)

		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestService_CreatePayment(t *testing.T) {
	t.Run("returns existing pending payment", func(t *testing.T) {
		existing := testPendingPayment(t)

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetOrderByNumber(gomock.Any(), orderNumber).Return(testOrder(t), nil)
			repo.EXPECT().GetPendingPaymentByOrderID(gomock.Any(), int64(7)).Return(existing, nil)
		})

		payment, err := s.CreatePayment(context.Background(), orderNumber)

		require.NoError(t, err)
		assert.Equal(t, existing, payment)
	})

	t.Run("creates payment when none pending", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetOrderByNumber(gomock.Any(), orderNumber).Return(testOrder(t), nil)
			repo.EXPECT().GetPendingPaymentByOrderID(gomock.Any(), int64(7)).
				Return(nil, domain.ErrDataNotFound)
			numbers.EXPECT().PaymentNumber().Return(paymentNumber)
			repo.EXPECT().CreatePaymentIfAbsent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, bool, error) {
					return payment, true, nil
				})
		})

		payment, err := s.CreatePayment(context.Background(), orderNumber)

		require.NoError(t, err)
		assert.Equal(t, paymentNumber, payment.Number)
		assert.Equal(t, int64(7), payment.OrderID)
		assert.True(t, payment.Amount.Equal(domain.MustMoney("200.00")))
	})

	t.Run("paid order cannot be billed again", func(t *testing.T) {
		order := testOrder(t)
		require.NoError(t, order.MarkAsPaid())

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetOrderByNumber(gomock.Any(), orderNumber).Return(order, nil)
			repo.EXPECT().GetPendingPaymentByOrderID(gomock.Any(), int64(7)).
				Return(nil, domain.ErrDataNotFound)
		})

		_, err := s.CreatePayment(context.Background(), orderNumber)

		assert.ErrorIs(t, err, domain.ErrStatusTransition)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Run("cancels order and pending payment", func(t *testing.T) {
		order := testOrder(t)
		payment := testPendingPayment(t)

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().UpdateOrderByNumber(gomock.Any(), orderNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.OrderNumber, fn port.UpdateOrderFn) (*domain.Order, error) {
					if err := fn(order, payment); err != nil {
						return nil, err
					}
					return order, nil
				})
		})

		err := s.CancelOrder(context.Background(), memberID, orderNumber)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, "cancelled by member", order.CancellationReason)
		assert.Equal(t, domain.PaymentStatusCancelled, payment.Status)
	})

	t.Run("other member's order reads as not found", func(t *testing.T) {
		order := testOrder(t)
		order.MemberID = 99

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().UpdateOrderByNumber(gomock.Any(), orderNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.OrderNumber, fn port.UpdateOrderFn) (*domain.Order, error) {
					return nil, fn(order, nil)
				})
		})

		err := s.CancelOrder(context.Background(), memberID, orderNumber)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("paid order cannot be cancelled by member", func(t *testing.T) {
		order := testOrder(t)
		require.NoError(t, order.MarkAsPaid())

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().UpdateOrderByNumber(gomock.Any(), orderNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.OrderNumber, fn port.UpdateOrderFn) (*domain.Order, error) {
					return nil, fn(order, nil)
				})
		})

		err := s.CancelOrder(context.Background(), memberID, orderNumber)

		assert.ErrorIs(t, err, domain.ErrStatusTransition)
	})
}

func TestService_MergeGuestCart(t *testing.T) {
	t.Run("merges and clamps quantities", func(t *testing.T) {
		guestItems := []domain.CartItem{
			{ProductID: 100, Quantity: 3},
			{ProductID: 200, Quantity: 1},
		}

		var replaced *domain.Cart
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{100, 200}).Return(testProducts(), nil)
			repo.EXPECT().GetCart(gomock.Any(), memberID).
				Return(testCart(t, domain.CartItem{ProductID: 100, Quantity: 2}), nil)
			repo.EXPECT().ReplaceCart(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, cart *domain.Cart) error {
					replaced = cart
					return nil
				})
		})

		merged, err := s.MergeGuestCart(context.Background(), memberID, guestItems)

		require.NoError(t, err)
		assert.Equal(t, 5, merged.Quantity(100))
		assert.Equal(t, 1, merged.Quantity(200))
		assert.Equal(t, merged, replaced)
	})

	t.Run("unknown guest product fails the whole merge", func(t *testing.T) {
		guestItems := []domain.CartItem{
			{ProductID: 100, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		}

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{100, 999}).Return(testProducts(), nil)
		})

		_, err := s.MergeGuestCart(context.Background(), memberID, guestItems)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestService_GatewayParams(t *testing.T) {
	t.Run("builds params for owned pending payment", func(t *testing.T) {
		payment := testPendingPayment(t)
		want := map[string]string{"MerchantTradeNo": paymentNumber.String(), "CheckMacValue": "ABC"}

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetPaymentByNumber(gomock.Any(), paymentNumber).Return(payment, nil)
			repo.EXPECT().GetOrderByID(gomock.Any(), int64(7)).Return(testOrder(t), nil)
			gateway.EXPECT().PaymentParams(payment, "Widget x 2").Return(want, nil)
		})

		params, err := s.GatewayParams(context.Background(), memberID, paymentNumber)

		require.NoError(t, err)
		assert.Equal(t, want, params)
	})

	t.Run("other member's payment reads as not found", func(t *testing.T) {
		order := testOrder(t)
		order.MemberID = 99

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetPaymentByNumber(gomock.Any(), paymentNumber).Return(testPendingPayment(t), nil)
			repo.EXPECT().GetOrderByID(gomock.Any(), int64(7)).Return(order, nil)
		})

		_, err := s.GatewayParams(context.Background(), memberID, paymentNumber)

		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("settled payment cannot be initiated", func(t *testing.T) {
		payment := testPendingPayment(t)
		require.NoError(t, payment.MarkAsPaid("TX1", domain.MustMoney("200")))

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().GetPaymentByNumber(gomock.Any(), paymentNumber).Return(payment, nil)
			repo.EXPECT().GetOrderByID(gomock.Any(), int64(7)).Return(testOrder(t), nil)
		})

		_, err := s.GatewayParams(context.Background(), memberID, paymentNumber)

		assert.ErrorIs(t, err, domain.ErrStatusTransition)
	})
}

func TestService_ExpireOverduePayments(t *testing.T) {
	t.Run("expires payment and cancels its order", func(t *testing.T) {
		payment := testPendingPayment(t)
		order := testOrder(t)

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListOverduePendingPayments(gomock.Any(), gomock.Any()).
				Return([]*domain.Payment{payment}, nil)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
					if err := fn(payment, order); err != nil {
						return nil, err
					}
					return payment, nil
				})
		})

		expired, err := s.ExpireOverduePayments(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, expired)
		assert.Equal(t, domain.PaymentStatusExpired, payment.Status)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, "payment expired", order.CancellationReason)
	})

	t.Run("payment settled in the meantime is skipped", func(t *testing.T) {
		payment := testPendingPayment(t)
		order := testOrder(t)
		require.NoError(t, payment.MarkAsPaid("TX1", domain.MustMoney("200")))
		require.NoError(t, order.MarkAsPaid())

		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListOverduePendingPayments(gomock.Any(), gomock.Any()).
				Return([]*domain.Payment{payment}, nil)
			repo.EXPECT().UpdatePaymentWithOrder(gomock.Any(), paymentNumber, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
					if err := fn(payment, order); err != nil {
						return nil, err
					}
					return payment, nil
				})
		})

		expired, err := s.ExpireOverduePayments(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, expired)
		assert.True(t, payment.IsPaid())
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
	})
}

func TestService_AddItem(t *testing.T) {
	t.Run("accumulates quantity for existing line", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{100}).Return(testProducts(), nil)
			repo.EXPECT().GetCart(gomock.Any(), memberID).
				Return(testCart(t, domain.CartItem{ProductID: 100, Quantity: 2}), nil)
			repo.EXPECT().UpsertCartItem(gomock.Any(), memberID, domain.CartItem{ProductID: 100, Quantity: 5}).
				Return(nil)
		})

		cart, err := s.AddItem(context.Background(), memberID, 100, 3)

		require.NoError(t, err)
		assert.Equal(t, 5, cart.Quantity(100))
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, numbers *mock.MockNumberSource) {
			repo.EXPECT().ListProductsByIDs(gomock.Any(), []int64{999}).
				Return(map[int64]domain.Product{}, nil)
		})

		_, err := s.AddItem(context.Background(), memberID, 999, 1)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
