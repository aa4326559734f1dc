package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mimimart/backend/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleAbort sends an error response and aborts the request with the mapped status code
func handleAbort(ctx *gin.Context, err error) {
	statusCode, _ := statusFromError(err)
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

type cartItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
}

func newCartResponse(cart *domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		items = append(items, cartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return cartResponse{Items: items, TotalItems: cart.TotalItemCount()}
}

type orderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type deliveryResponse struct {
	ReceiverName    string `json:"receiver_name"`
	ReceiverPhone   string `json:"receiver_phone"`
	ShippingAddress string `json:"shipping_address"`
	Method          string `json:"delivery_method"`
	Note            string `json:"note,omitempty"`
}

type orderResponse struct {
	Number             string              `json:"number"`
	Status             string              `json:"status"`
	TotalAmount        string              `json:"total_amount"`
	Items              []orderItemResponse `json:"items"`
	Delivery           deliveryResponse    `json:"delivery"`
	CancellationReason string              `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Snapshot.Name,
			Price:     item.Snapshot.Price.String(),
			Image:     item.Snapshot.Image,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.String(),
		})
	}
	delivery := deliveryResponse{
		ReceiverName:    order.Delivery.ReceiverName,
		ReceiverPhone:   order.Delivery.ReceiverPhone,
		ShippingAddress: order.Delivery.ShippingAddress,
		Method:          string(order.Delivery.Method),
		Note:            order.Delivery.Note,
	}
	return orderResponse{
		Number:             order.Number.String(),
		Status:             string(order.Status),
		TotalAmount:        order.TotalAmount.String(),
		Items:              items,
		Delivery:           delivery,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
	}
}

type paymentResponse struct {
	Number        string     `json:"number"`
	Status        string     `json:"status"`
	Amount        string     `json:"amount"`
	Method        string     `json:"method"`
	TransactionID string     `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	ExpiredAt     time.Time  `json:"expired_at"`
}

func newPaymentResponse(payment *domain.Payment) paymentResponse {
	return paymentResponse{
		Number:        payment.Number.String(),
		Status:        string(payment.Status),
		Amount:        payment.Amount.String(),
		Method:        payment.Method,
		TransactionID: payment.ExternalTransactionID,
		PaidAt:        payment.PaidAt,
		ExpiredAt:     payment.ExpiredAt,
	}
}

type checkoutResponse struct {
	Order   orderResponse   `json:"order"`
	Payment paymentResponse `json:"payment"`
}
