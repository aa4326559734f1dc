package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mimimart/backend/internal/adapter/auth"
	"github.com/mimimart/backend/internal/adapter/config"
	"github.com/mimimart/backend/internal/adapter/gateway/ecpay"
	"github.com/mimimart/backend/internal/adapter/handler/http"
	"github.com/mimimart/backend/internal/adapter/idgen"
	"github.com/mimimart/backend/internal/adapter/logger"
	"github.com/mimimart/backend/internal/adapter/outbox"
	"github.com/mimimart/backend/internal/adapter/scheduler"
	"github.com/mimimart/backend/internal/adapter/storage"
	"github.com/mimimart/backend/internal/adapter/storage/repository"
	"github.com/mimimart/backend/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := ecpay.New(conf.Gateway)
	if err != nil {
		log.Error("payment gateway creating error", zap.Error(err))
		return
	}

	paymentTTL := time.Duration(conf.Payment.ExpirationMinutes) * time.Minute
	svc, err := service.NewService(repo, gateway, idgen.New(), log.Named("Service"), paymentTTL)
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	dispatcher, err := outbox.NewDispatcher(conf.Outbox, repo, svc, log.Named("Outbox"))
	if err != nil {
		log.Error("outbox dispatcher creating error", zap.Error(err))
		return
	}
	go dispatcher.Run(ctx)

	sweeper, err := scheduler.NewSweeper(svc, log.Named("Sweeper"), conf.Payment.SweepInterval)
	if err != nil {
		log.Error("payment sweeper creating error", zap.Error(err))
		return
	}
	go sweeper.Run(ctx)

	cartHandler, err := http.NewCartHandler(svc, log.Named("Cart handler"))
	if err != nil {
		log.Error("cart handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	callbackHandler, err := http.NewCallbackHandler(svc, log.Named("Callback handler"))
	if err != nil {
		log.Error("callback handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, cartHandler, orderHandler, paymentHandler, callbackHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
