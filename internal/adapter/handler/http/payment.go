package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.PaymentService
}

func NewPaymentHandler(service port.PaymentService, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ph *PaymentHandler) GetPayment(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	number, err := domain.ParsePaymentNumber(ctx.Param("number"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := ph.service.GetPayment(ctx, memberID, number)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

// GatewayParams returns the signed form fields the shop frontend posts to the
// gateway's checkout endpoint.
func (ph *PaymentHandler) GatewayParams(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	number, err := domain.ParsePaymentNumber(ctx.Param("number"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	params, err := ph.service.GatewayParams(ctx, memberID, number)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, params)
}
