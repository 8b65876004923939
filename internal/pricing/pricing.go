// Package pricing converts USD base prices into the East African
// currencies the storefront displays. Rates are fixed; repricing happens
// by updating this table and re-saving products.
package pricing

import (
	"math"

	"github.com/queenkoba/queenkoba/internal/domain"
)

type currencyInfo struct {
	Rate    float64
	Symbol  string
	Country string
}

var currencies = map[string]currencyInfo{
	"KES": {Rate: 128.5, Symbol: "KSh", Country: "Kenya"},
	"UGX": {Rate: 3582.34, Symbol: "USh", Country: "Uganda"},
	"BIF": {Rate: 2850.0, Symbol: "FBu", Country: "Burundi"},
	"CDF": {Rate: 2700.0, Symbol: "FC", Country: "DRC Congo"},
}

// Calculate returns the localized price map for a USD base price.
// Amounts are rounded to two decimal places.
func Calculate(basePriceUSD float64) domain.PriceMap {
	prices := make(domain.PriceMap, len(currencies))
	for code, info := range currencies {
		prices[code] = domain.CurrencyPrice{
			Amount:  Round2(basePriceUSD * info.Rate),
			Symbol:  info.Symbol,
			Country: info.Country,
		}
	}
	return prices
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
