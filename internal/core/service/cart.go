package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mimimart/backend/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetCart(ctx context.Context, memberID int64) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return cart, nil
}

func (s *Service) AddItem(ctx context.Context, memberID int64, productID int64, quantity int) (*domain.Cart, error) {
	if err := s.requireProducts(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := cart.AddProduct(productID, quantity); err != nil {
		return nil, err
	}

	item := domain.CartItem{ProductID: productID, Quantity: cart.Quantity(productID)}
	if err := s.repo.UpsertCartItem(ctx, memberID, item); err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return cart, nil
}

func (s *Service) UpdateItem(ctx context.Context, memberID int64, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	item := domain.CartItem{ProductID: productID, Quantity: quantity}
	if err := s.repo.UpsertCartItem(ctx, memberID, item); err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, memberID int64, productID int64) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := cart.RemoveProduct(productID); err != nil {
		return nil, err
	}

	err = s.repo.RemoveCartItem(ctx, memberID, productID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Remove cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return cart, nil
}

func (s *Service) ClearCart(ctx context.Context, memberID int64) error {
	if err := s.repo.ClearCart(ctx, memberID); err != nil {
		s.logger.Error("Clear cart", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

// MergeGuestCart folds the guest's lines into the member's stored cart.
// Every guest product is validated against the catalog up front: one unknown
// product fails the whole merge and the member's cart stays as it was.
func (s *Service) MergeGuestCart(ctx context.Context, memberID int64, guestItems []domain.CartItem) (*domain.Cart, error) {
	ids := make([]int64, 0, len(guestItems))
	for _, item := range guestItems {
		ids = append(ids, item.ProductID)
	}
	if err := s.requireProducts(ctx, ids...); err != nil {
		return nil, err
	}

	guestCart, err := domain.ReconstructCart(domain.GuestMemberID, guestItems)
	if err != nil {
		return nil, err
	}

	memberCart, err := s.repo.GetCart(ctx, memberID)
	if err != nil {
		s.logger.Error("Get cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	merged, err := domain.MergeCarts(memberCart, guestCart)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceCart(ctx, merged); err != nil {
		s.logger.Error("Replace cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return merged, nil
}

// requireProducts fails with ErrProductNotFound naming the first missing id.
func (s *Service) requireProducts(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	products, err := s.repo.ListProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return domain.ErrInternal
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return fmt.Errorf("%w: product %d", domain.ErrProductNotFound, id)
		}
	}
	return nil
}
