package domain_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMoney_New(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		expError error
	}{
		{name: "integer", input: "100", expected: "100"},
		{name: "two decimals kept", input: "99.95", expected: "99.95"},
		{name: "rounds half up", input: "1.005", expected: "1.01"},
		{name: "rounds down below half", input: "1.0049", expected: "1"},
		{name: "zero", input: "0", expected: "0"},
		{name: "negative rejected", input: "-0.01", expError: domain.ErrNegativeAmount},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := domain.NewMoneyFromString(test.input)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.True(t, m.Equal(domain.MustMoney(test.expected)),
				"got %s, want %s", m, test.expected)
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	hundred := domain.MustMoney("100.00")
	fifty := domain.MustMoney("50.00")

	sum, err := hundred.Add(fifty)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(domain.MustMoney("150.00")))

	diff, err := hundred.Subtract(fifty)
	assert.NoError(t, err)
	assert.True(t, diff.Equal(fifty))

	_, err = fifty.Subtract(hundred)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	product, err := hundred.Multiply(3)
	assert.NoError(t, err)
	assert.True(t, product.Equal(domain.MustMoney("300.00")))

	_, err = hundred.Multiply(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidMultiplier)

	zeroed, err := hundred.Multiply(0)
	assert.NoError(t, err)
	assert.True(t, zeroed.IsZero())
}

func TestMoney_EqualityIgnoresRepresentation(t *testing.T) {
	a, err := domain.NewMoney(decimal.MustParse("200"))
	assert.NoError(t, err)
	b, err := domain.NewMoney(decimal.MustParse("200.00"))
	assert.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestMoney_EqualUnits(t *testing.T) {
	assert.True(t, domain.MustMoney("199.50").EqualUnits(domain.MustMoney("200")))
	assert.True(t, domain.MustMoney("200.00").EqualUnits(domain.MustMoney("200")))
	assert.False(t, domain.MustMoney("199.49").EqualUnits(domain.MustMoney("200")))
	assert.False(t, domain.MustMoney("201").EqualUnits(domain.MustMoney("200")))
}

func TestMoney_UnitsString(t *testing.T) {
	units, err := domain.MustMoney("200.00").UnitsString()
	assert.NoError(t, err)
	assert.Equal(t, "200", units)

	units, err = domain.MustMoney("199.50").UnitsString()
	assert.NoError(t, err)
	assert.Equal(t, "200", units)

	units, err = domain.MustMoney("199.49").UnitsString()
	assert.NoError(t, err)
	assert.Equal(t, "199", units)
}
