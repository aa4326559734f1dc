package domain_test

import (
	"testing"

	"github.com/mimimart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCart_AddUpdateRemove(t *testing.T) {
	cart := domain.NewCart(1)
	assert.True(t, cart.IsEmpty())

	assert.NoError(t, cart.AddProduct(10, 2))
	assert.NoError(t, cart.AddProduct(10, 3))
	assert.Equal(t, 5, cart.Quantity(10))

	assert.NoError(t, cart.UpdateQuantity(10, 1))
	assert.Equal(t, 1, cart.Quantity(10))

	assert.ErrorIs(t, cart.UpdateQuantity(99, 1), domain.ErrCartItemNotFound)
	assert.ErrorIs(t, cart.RemoveProduct(99), domain.ErrCartItemNotFound)
	assert.ErrorIs(t, cart.AddProduct(11, 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddProduct(11, 1000), domain.ErrInvalidQuantity)

	assert.NoError(t, cart.RemoveProduct(10))
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddProduct_CapsAtMax(t *testing.T) {
	cart := domain.NewCart(1)
	assert.NoError(t, cart.AddProduct(10, 999))
	assert.ErrorIs(t, cart.AddProduct(10, 1), domain.ErrInvalidQuantity)
	assert.Equal(t, 999, cart.Quantity(10))
}

func TestMergeCarts(t *testing.T) {
	memberCart := domain.NewCart(1)
	assert.NoError(t, memberCart.AddProduct(100, 2))

	guestCart := domain.NewCart(domain.GuestMemberID)
	assert.NoError(t, guestCart.AddProduct(100, 3))
	assert.NoError(t, guestCart.AddProduct(200, 1))

	merged, err := domain.MergeCarts(memberCart, guestCart)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), merged.MemberID)
	assert.Equal(t, 5, merged.Quantity(100))
	assert.Equal(t, 1, merged.Quantity(200))
	assert.Equal(t, 2, len(merged.Items()))

	// inputs untouched
	assert.Equal(t, 2, memberCart.Quantity(100))
	assert.Equal(t, 3, guestCart.Quantity(100))
}

func TestMergeCarts_ClampsAtMax(t *testing.T) {
	memberCart := domain.NewCart(1)
	assert.NoError(t, memberCart.AddProduct(100, 900))

	guestCart := domain.NewCart(domain.GuestMemberID)
	assert.NoError(t, guestCart.AddProduct(100, 900))

	merged, err := domain.MergeCarts(memberCart, guestCart)
	assert.NoError(t, err)
	assert.Equal(t, 999, merged.Quantity(100))
}

func TestReconstructCart(t *testing.T) {
	cart, err := domain.ReconstructCart(1, []domain.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItemCount())

	_, err = domain.ReconstructCart(1, []domain.CartItem{{ProductID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}
