package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCurrencies(t *testing.T) {
	prices := Calculate(10.0)

	require.Len(t, prices, 4)

	kes, ok := prices["KES"]
	require.True(t, ok)
	assert.Equal(t, 1285.0, kes.Amount)
	assert.Equal(t, "KSh", kes.Symbol)
	assert.Equal(t, "Kenya", kes.Country)

	ugx := prices["UGX"]
	assert.Equal(t, 35823.4, ugx.Amount)
	assert.Equal(t, "USh", ugx.Symbol)
	assert.Equal(t, "Uganda", ugx.Country)

	bif := prices["BIF"]
	assert.Equal(t, 28500.0, bif.Amount)
	assert.Equal(t, "FBu", bif.Symbol)
	assert.Equal(t, "Burundi", bif.Country)

	cdf := prices["CDF"]
	assert.Equal(t, 27000.0, cdf.Amount)
	assert.Equal(t, "FC", cdf.Symbol)
	assert.Equal(t, "DRC Congo", cdf.Country)
}

func TestCalculateRounding(t *testing.T) {
	prices := Calculate(29.99)
	// 29.99 * 128.5 = 3853.715, rounded to two decimals
	assert.InDelta(t, 3853.715, prices["KES"].Amount, 0.01)
	cents := Round2(prices["KES"].Amount)
	assert.Equal(t, cents, prices["KES"].Amount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 2.72, Round2(2.718))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -3.14, Round2(-3.14159))
}
