package domain

import (
	"fmt"
	"sort"
)

const (
	minQuantityPerItem = 1
	maxQuantityPerItem = 999
)

// GuestMemberID is the pseudo-owner of a cart that has not been attached to a
// member yet.
const GuestMemberID int64 = 0

// CartItem is one productID/quantity pair of a cart.
type CartItem struct {
	ProductID int64
	Quantity  int
}

func NewCartItem(productID int64, quantity int) (CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return CartItem{}, err
	}
	return CartItem{ProductID: productID, Quantity: quantity}, nil
}

// Cart is a member-scoped mapping of productID to quantity. It has no
// persistence invariants beyond quantity bounds.
type Cart struct {
	MemberID int64
	items    map[int64]int
}

func NewCart(memberID int64) *Cart {
	return &Cart{MemberID: memberID, items: make(map[int64]int)}
}

// ReconstructCart rebuilds a cart from persisted items.
func ReconstructCart(memberID int64, items []CartItem) (*Cart, error) {
	cart := NewCart(memberID)
	for _, item := range items {
		if err := validateQuantity(item.Quantity); err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		cart.items[item.ProductID] = item.Quantity
	}
	return cart, nil
}

// AddProduct adds quantity to an existing line or creates a new one.
func (c *Cart) AddProduct(productID int64, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	total := c.items[productID] + quantity
	if total > maxQuantityPerItem {
		return fmt.Errorf("product %d: %w", productID, ErrInvalidQuantity)
	}
	c.items[productID] = total
	return nil
}

// UpdateQuantity replaces the quantity of an existing line.
func (c *Cart) UpdateQuantity(productID int64, quantity int) error {
	if _, ok := c.items[productID]; !ok {
		return fmt.Errorf("product %d: %w", productID, ErrCartItemNotFound)
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.items[productID] = quantity
	return nil
}

func (c *Cart) RemoveProduct(productID int64) error {
	if _, ok := c.items[productID]; !ok {
		return fmt.Errorf("product %d: %w", productID, ErrCartItemNotFound)
	}
	delete(c.items, productID)
	return nil
}

func (c *Cart) Clear() {
	c.items = make(map[int64]int)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Contains(productID int64) bool {
	_, ok := c.items[productID]
	return ok
}

// Quantity returns 0 for products not in the cart.
func (c *Cart) Quantity(productID int64) int {
	return c.items[productID]
}

// Items returns the cart lines ordered by product id.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.items))
	for id, qty := range c.items {
		items = append(items, CartItem{ProductID: id, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}

func (c *Cart) TotalItemCount() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// MergeCarts combines a guest cart into a member cart, producing a new cart
// owned by the member. Quantities of products present on both sides are
// summed, clamped at the per-item maximum; products present on one side keep
// their quantity. Neither input cart is modified.
func MergeCarts(memberCart, guestCart *Cart) (*Cart, error) {
	merged := NewCart(memberCart.MemberID)
	for _, item := range memberCart.Items() {
		merged.items[item.ProductID] = item.Quantity
	}
	for _, item := range guestCart.Items() {
		if err := validateQuantity(item.Quantity); err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		sum := merged.items[item.ProductID] + item.Quantity
		if sum > maxQuantityPerItem {
			sum = maxQuantityPerItem
		}
		merged.items[item.ProductID] = sum
	}
	return merged, nil
}

func validateQuantity(quantity int) error {
	if quantity < minQuantityPerItem || quantity > maxQuantityPerItem {
		return ErrInvalidQuantity
	}
	return nil
}
