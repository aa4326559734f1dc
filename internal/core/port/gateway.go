package port

import "github.com/mimimart/backend/internal/core/domain"

// gateway return code for a successful trade
const gatewaySuccessCode = "1"

// GatewayCallback is the parsed field set of a gateway webhook.
type GatewayCallback struct {
	MerchantTradeNo string // our PaymentNumber
	TradeNo         string // gateway transaction id
	RtnCode         string
	RtnMsg          string
	TradeAmt        string // integer amount string
	PaymentType     string
	PaymentDate     string
	TradeDate       string
}

func (c GatewayCallback) Succeeded() bool {
	return c.RtnCode == gatewaySuccessCode
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// PaymentParams builds the signed outbound parameter map initiating a
	// payment for the given pending payment.
	PaymentParams(payment *domain.Payment, itemName string) (map[string]string, error)
	// VerifyCallback recomputes the signature over the received parameters
	// and fails closed on any mismatch.
	VerifyCallback(params map[string]string) bool
	ParseCallback(params map[string]string) GatewayCallback
}

// NumberSource issues new business identifiers. Injectable so tests control
// the generated numbers.
type NumberSource interface {
	OrderNumber() domain.OrderNumber
	PaymentNumber() domain.PaymentNumber
}
