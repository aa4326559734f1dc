package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Payment  *Payment
	Outbox   *Outbox
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Gateway holds the ECPay merchant credentials and URLs. HashKey and HashIV
// sign every outbound request and verify every inbound callback.
type Gateway struct {
	MerchantID  string `env:"ECPAY_MERCHANT_ID"`
	HashKey     string `env:"ECPAY_HASH_KEY"`
	HashIV      string `env:"ECPAY_HASH_IV"`
	APIURL      string `env:"ECPAY_API_URL" envDefault:"https://payment-stage.ecpay.com.tw"`
	ReturnURL   string `env:"ECPAY_RETURN_URL"`
	CallbackURL string `env:"ECPAY_CALLBACK_URL"`
	TradeDesc   string `env:"ECPAY_TRADE_DESC" envDefault:"MimiMart purchase"`
}

type Payment struct {
	ExpirationMinutes int           `env:"PAYMENT_EXPIRATION_MINUTES" envDefault:"30"`
	SweepInterval     time.Duration `env:"PAYMENT_SWEEP_INTERVAL" envDefault:"5m"`
}

type Outbox struct {
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"5s"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var payment Payment
	var outbox Outbox
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&outbox)
	if err != nil {
		return nil, fmt.Errorf("error parsing outbox config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Payment:  &payment,
		Outbox:   &outbox,
		App:      &app,
	}

	return &config, nil
}

// CheckoutURL is the gateway endpoint the signed payment form posts to.
func (g *Gateway) CheckoutURL() string {
	return g.APIURL + "/Cashier/AioCheckOut/V5"
}
