package domain

import (
	"fmt"
	"strings"
)

const (
	orderNumberPrefix   = "ORD"
	paymentNumberPrefix = "PAY"
)

// OrderNumber is the opaque business identifier of an order.
type OrderNumber string

// ParseOrderNumber validates an identifier coming from storage or a request.
func ParseOrderNumber(s string) (OrderNumber, error) {
	if err := validateNumber(s, orderNumberPrefix); err != nil {
		return "", err
	}
	return OrderNumber(s), nil
}

func (n OrderNumber) String() string { return string(n) }

// PaymentNumber is the opaque business identifier of a payment. It doubles as
// the gateway's MerchantTradeNo.
type PaymentNumber string

func ParsePaymentNumber(s string) (PaymentNumber, error) {
	if err := validateNumber(s, paymentNumberPrefix); err != nil {
		return "", err
	}
	return PaymentNumber(s), nil
}

func (n PaymentNumber) String() string { return string(n) }

func validateNumber(s, prefix string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: blank", ErrInvalidNumber)
	}
	if !strings.HasPrefix(s, prefix) {
		return fmt.Errorf("%w: expected prefix %s, got %q", ErrInvalidNumber, prefix, s)
	}
	return nil
}
