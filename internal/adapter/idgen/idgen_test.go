package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mimimart/backend/internal/adapter/idgen"
	"github.com/mimimart/backend/internal/core/domain"
)

func TestOrderNumberFormat(t *testing.T) {
	g := idgen.New()

	n := g.OrderNumber()

	assert.Len(t, string(n), 3+14+6)
	parsed, err := domain.ParseOrderNumber(string(n))
	assert.NoError(t, err)
	assert.Equal(t, n, parsed)
}

func TestPaymentNumberFormat(t *testing.T) {
	g := idgen.New()

	n := g.PaymentNumber()

	assert.Len(t, string(n), 3+14+3)
	parsed, err := domain.ParsePaymentNumber(string(n))
	assert.NoError(t, err)
	assert.Equal(t, n, parsed)
}

func TestNumbersVary(t *testing.T) {
	g := idgen.New()

	seen := make(map[domain.OrderNumber]bool)
	for i := 0; i < 50; i++ {
		seen[g.OrderNumber()] = true
	}

	assert.Greater(t, len(seen), 1)
}
