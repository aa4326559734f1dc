package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

type CartHandler struct {
	Handler
	service port.CartService
}

func NewCartHandler(service port.CartService, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	cart, err := ch.service.GetCart(ctx, memberID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(cart))
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

func (ch *CartHandler) AddItem(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	cart, err := ch.service.AddItem(ctx, memberID, req.ProductID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(cart))
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (ch *CartHandler) UpdateItem(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	productID, err := strconv.ParseInt(ctx.Param("productID"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req updateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	cart, err := ch.service.UpdateItem(ctx, memberID, productID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(cart))
}

func (ch *CartHandler) RemoveItem(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	productID, err := strconv.ParseInt(ctx.Param("productID"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	cart, err := ch.service.RemoveItem(ctx, memberID, productID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(cart))
}

func (ch *CartHandler) ClearCart(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	if err := ch.service.ClearCart(ctx, memberID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type mergeCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

type mergeCartRequest struct {
	Items []mergeCartItemRequest `json:"items" binding:"required"`
}

// MergeGuestCart folds the cart a guest built before logging in into the
// member's cart.
func (ch *CartHandler) MergeGuestCart(ctx *gin.Context) {
	memberID := getAuthPayload(ctx).MemberID

	var req mergeCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	guestItems := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		guestItems = append(guestItems, domain.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cart, err := ch.service.MergeGuestCart(ctx, memberID, guestItems)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartResponse(cart))
}
