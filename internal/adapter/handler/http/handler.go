package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
	"go.uber.org/zap"
)

// errorStatuses maps domain errors to HTTP statuses. Ordered so the specific
// business errors win over the generic storage ones; matching uses errors.Is
// so wrapped errors resolve correctly.
var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrPaymentNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrCartItemNotFound, http.StatusNotFound},
	{domain.ErrDataNotFound, http.StatusNotFound},

	{domain.ErrStatusTransition, http.StatusConflict},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrEmptyCart, http.StatusUnprocessableEntity},
	{domain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
	{domain.ErrBlankCancelReason, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDeliveryInfo, http.StatusUnprocessableEntity},
	{domain.ErrInvalidNumber, http.StatusUnprocessableEntity},
	{domain.ErrAmountMismatch, http.StatusUnprocessableEntity},

	{domain.ErrSignatureMismatch, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},

	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrInternal, http.StatusInternalServerError},
}

func statusFromError(err error) (int, bool) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusFromError(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
