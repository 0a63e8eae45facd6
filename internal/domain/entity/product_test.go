package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidProductCode(t *testing.T) {
	assert.True(t, IsValidProductCode(1000))
	assert.True(t, IsValidProductCode(9999))
	assert.False(t, IsValidProductCode(999))
	assert.False(t, IsValidProductCode(10000))
	assert.False(t, IsValidProductCode(0))
}

func TestProduct_FindOption(t *testing.T) {
	product := &Product{
		Name: "Apple Pie",
		Options: []ProductOption{
			{Name: "Large", PriceDelta: 6.00},
			{Name: "Small", PriceDelta: -2.00},
		},
	}

	option, ok := product.FindOption("large")
	require.True(t, ok)
	assert.Equal(t, "Large", option.Name)

	_, ok = product.FindOption("Deluxe")
	assert.False(t, ok)
}

func TestProduct_OptionPrice(t *testing.T) {
	product := &Product{BasePrice: 19.99, Options: []ProductOption{{Name: "Large", PriceDelta: 6.00}}}

	assert.InDelta(t, 19.99, product.OptionPrice(nil), 0.001)
	assert.InDelta(t, 25.99, product.OptionPrice(&product.Options[0]), 0.001)
}
