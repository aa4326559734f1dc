package ecpay

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mimimart/backend/internal/adapter/config"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
)

const (
	paymentTypeAIO   = "aio"
	encryptTypeSHA   = "1"
	tradeDateLayout  = "2006/01/02 15:04:05"
	methodPrefix     = "ECPAY_"
	defaultChoosePay = "ALL"
)

// Gateway signs outbound ECPay checkout parameters and verifies the
// CheckMacValue of inbound callbacks.
type Gateway struct {
	merchantID  string
	hashKey     string
	hashIV      string
	returnURL   string // server-to-server notification endpoint
	clientBack  string // browser redirect after payment
	tradeDesc   string
}

func New(conf *config.Gateway) (*Gateway, error) {
	if conf.MerchantID == "" || conf.HashKey == "" || conf.HashIV == "" {
		return nil, fmt.Errorf("%w: gateway credentials missing", domain.ErrInternal)
	}
	return &Gateway{
		merchantID: conf.MerchantID,
		hashKey:    conf.HashKey,
		hashIV:     conf.HashIV,
		returnURL:  conf.CallbackURL,
		clientBack: conf.ReturnURL,
		tradeDesc:  conf.TradeDesc,
	}, nil
}

var _ port.PaymentGateway = (*Gateway)(nil)

// PaymentParams builds the signed form parameter set for the AIO checkout
// endpoint. MerchantTradeNo is our payment number, so the callback can be
// routed back to the payment that initiated it.
func (g *Gateway) PaymentParams(payment *domain.Payment, itemName string) (map[string]string, error) {
	amount, err := payment.Amount.UnitsString()
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"MerchantID":        g.merchantID,
		"MerchantTradeNo":   payment.Number.String(),
		"MerchantTradeDate": payment.CreatedAt.Format(tradeDateLayout),
		"PaymentType":       paymentTypeAIO,
		"TotalAmount":       amount,
		"TradeDesc":         g.tradeDesc,
		"ItemName":          itemName,
		"ReturnURL":         g.returnURL,
		"ClientBackURL":     g.clientBack,
		"ChoosePayment":     choosePayment(payment.Method),
		"EncryptType":       encryptTypeSHA,
		"NeedExtraPaidInfo": "N",
	}
	params["CheckMacValue"] = g.checkMacValue(params)
	return params, nil
}

// VerifyCallback recomputes the signature over every received field except
// CheckMacValue itself. Missing or mismatching signatures fail closed.
func (g *Gateway) VerifyCallback(params map[string]string) bool {
	received, ok := params["CheckMacValue"]
	if !ok || received == "" {
		return false
	}
	unsigned := make(map[string]string, len(params))
	for k, v := range params {
		if k == "CheckMacValue" {
			continue
		}
		unsigned[k] = v
	}
	return strings.EqualFold(g.checkMacValue(unsigned), received)
}

func (g *Gateway) ParseCallback(params map[string]string) port.GatewayCallback {
	return port.GatewayCallback{
		MerchantTradeNo: params["MerchantTradeNo"],
		TradeNo:         params["TradeNo"],
		RtnCode:         params["RtnCode"],
		RtnMsg:          params["RtnMsg"],
		TradeAmt:        params["TradeAmt"],
		PaymentType:     params["PaymentType"],
		PaymentDate:     params["PaymentDate"],
		TradeDate:       params["TradeDate"],
	}
}

// checkMacValue implements the ECPay signature: sort keys ascending, join as
// a query string, wrap with HashKey/HashIV, URL-encode, lowercase, SHA-256,
// uppercase hex.
func (g *Gateway) checkMacValue(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("HashKey=")
	b.WriteString(g.hashKey)
	for _, k := range keys {
		b.WriteString("&")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	b.WriteString("&HashIV=")
	b.WriteString(g.hashIV)

	encoded := strings.ToLower(ecpayEncode(b.String()))
	sum := sha256.Sum256([]byte(encoded))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// ecpayEncode URL-encodes the way the gateway expects: on top of standard
// query escaping, the characters ! * ( ) stay literal and ~ is escaped.
func ecpayEncode(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "%21", "!")
	e = strings.ReplaceAll(e, "%2A", "*")
	e = strings.ReplaceAll(e, "%28", "(")
	e = strings.ReplaceAll(e, "%29", ")")
	e = strings.ReplaceAll(e, "~", "%7E")
	return e
}

func choosePayment(method string) string {
	if strings.HasPrefix(method, methodPrefix) {
		return strings.TrimPrefix(method, methodPrefix)
	}
	return defaultChoosePay
}
