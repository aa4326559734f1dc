package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutDeliveryRequest struct {
	ReceiverName    string `json:"receiver_name" binding:"required"`
	ReceiverPhone   string `json:"receiver_phone" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	Method          string `json:"delivery_method" binding:"required"`
	Note            string `json:"note"`
}

type checkoutRequest struct {
	Delivery      checkoutDeliveryRequest `json:"delivery" binding:"required"`
	PaymentMethod string                  `json:"payment_method" binding:"required"`
}

// Checkout converts the member's cart into an order and returns both the
// order and its pending payment.
func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	delivery, err := domain.NewDeliveryInfo(
		req.Delivery.ReceiverName,
		req.Delivery.ReceiverPhone,
		req.Delivery.ShippingAddress,
		domain.DeliveryMethod(req.Delivery.Method),
		req.Delivery.Note,
	)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, payment, err := oh.service.Checkout(ctx, memberID, port.CheckoutRequest{
		Delivery:      delivery,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, checkoutResponse{
		Order:   newOrderResponse(order),
		Payment: newPaymentResponse(payment),
	}, http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	list, err := oh.service.ListOrders(ctx, memberID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, memberID, number)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if err := oh.service.CancelOrder(ctx, memberID, number); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) GetOrderAdmin(ctx *gin.Context) {
	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.GetOrderAdmin(ctx, number)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ShipOrder(ctx *gin.Context) {
	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if err := oh.service.ShipOrder(ctx, number); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) CompleteOrder(ctx *gin.Context) {
	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if err := oh.service.CompleteOrder(ctx, number); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type cancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (oh *OrderHandler) CancelOrderAdmin(ctx *gin.Context) {
	number, err := domain.ParseOrderNumber(ctx.Param("number"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	var req cancelOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.CancelOrderAdmin(ctx, number, req.Reason); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
