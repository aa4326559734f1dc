package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

// Gateway webhook acknowledgement bodies. The gateway retries any response
// that is not exactly "1|OK".
const (
	callbackAck  = "1|OK"
	callbackNack = "0|"
)

type CallbackHandler struct {
	Handler
	service port.PaymentService
}

func NewCallbackHandler(service port.PaymentService, logger *zap.Logger) (*CallbackHandler, error) {
	return &CallbackHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// ECPayCallback receives the gateway's server-to-server payment notification.
// Handled deliveries, including duplicates and gateway-reported failures, are
// acknowledged with "1|OK"; anything else answers "0|<reason>" so the gateway
// retries.
func (ch *CallbackHandler) ECPayCallback(ctx *gin.Context) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.String(http.StatusOK, callbackNack+"malformed form")
		return
	}

	params := make(map[string]string, len(ctx.Request.PostForm))
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	if err := ch.service.HandleCallback(ctx, params); err != nil {
		ch.logger.Warn("gateway callback rejected", zap.Error(err))
		ctx.String(http.StatusOK, callbackNack+err.Error())
		return
	}

	ctx.String(http.StatusOK, callbackAck)
}
