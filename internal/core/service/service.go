package service

import (
	"time"

	"github.com/mimimart/backend/internal/core/port"
	"go.uber.org/zap"
)

// Service implements the cart, order and payment use cases on top of the
// persistence and gateway ports.
type Service struct {
	repo       port.Repository
	gateway    port.PaymentGateway
	numbers    port.NumberSource
	logger     *zap.Logger
	paymentTTL time.Duration
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	numbers port.NumberSource, logger *zap.Logger, paymentTTL time.Duration) (*Service, error) {
	return &Service{
		repo:       repo,
		gateway:    gateway,
		numbers:    numbers,
		logger:     logger,
		paymentTTL: paymentTTL,
	}, nil
}
