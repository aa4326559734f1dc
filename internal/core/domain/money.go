package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// moneyScale is the number of decimal places every Money value is kept at.
const moneyScale = 2

// Money is a non-negative amount with a fixed scale of two and half-up
// rounding. The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds a Money from a raw decimal, rejecting negative values and
// rescaling to two decimal places half-up.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.Cmp(decimal.Zero) < 0 {
		return Money{}, ErrNegativeAmount
	}
	rescaled, err := rescaleHalfUp(amount, moneyScale)
	if err != nil {
		return Money{}, fmt.Errorf("money rescale: %w", err)
	}
	return Money{amount: rescaled}, nil
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", ErrBadRequest, s)
	}
	return NewMoney(d)
}

// MustMoney parses s or panics. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) (Money, error) {
	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("money add: %w", err)
	}
	return Money{amount: sum}, nil
}

// Subtract fails instead of producing a negative Money.
func (m Money) Subtract(other Money) (Money, error) {
	diff, err := m.amount.Sub(other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("money subtract: %w", err)
	}
	if diff.Cmp(decimal.Zero) < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: diff}, nil
}

func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, ErrInvalidMultiplier
	}
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return Money{}, fmt.Errorf("money multiply: %w", err)
	}
	product, err := m.amount.Mul(q)
	if err != nil {
		return Money{}, fmt.Errorf("money multiply: %w", err)
	}
	return Money{amount: product}, nil
}

// Equal compares numeric value, not representation.
func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

// EqualUnits compares two amounts at whole-unit precision, the precision the
// payment gateway reports in.
func (m Money) EqualUnits(other Money) bool {
	a, errA := rescaleHalfUp(m.amount, 0)
	b, errB := rescaleHalfUp(other.amount, 0)
	if errA != nil || errB != nil {
		return false
	}
	return a.Cmp(b) == 0
}

func (m Money) IsZero() bool {
	return m.amount.Cmp(decimal.Zero) == 0
}

func (m Money) LessThan(other Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.String()
}

// UnitsString renders the amount as an integer string, rounded half-up.
// The payment gateway only accepts whole currency units.
func (m Money) UnitsString() (string, error) {
	units, err := rescaleHalfUp(m.amount, 0)
	if err != nil {
		return "", fmt.Errorf("money units: %w", err)
	}
	return units.String(), nil
}

// rescaleHalfUp truncates d to the given scale and rounds the remainder
// half-up. Callers guarantee d is non-negative.
func rescaleHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	floor := d.Trunc(scale)
	rem, err := d.Sub(floor)
	if err != nil {
		return decimal.Decimal{}, err
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if rem.Cmp(half) < 0 {
		return floor, nil
	}
	step, err := decimal.New(1, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return floor.Add(step)
}
