package domain

import "math"

// ExchangeRate converts between the canonical KES price and its USD display
// value.
type ExchangeRate struct {
	USDToKES float64 `json:"usdToKes"`
	KESToUSD float64 `json:"kesToUsd"`
}

// NewExchangeRate builds a rate from the number of shillings per dollar.
func NewExchangeRate(usdToKES float64) ExchangeRate {
	if usdToKES <= 0 {
		return ExchangeRate{}
	}
	return ExchangeRate{USDToKES: usdToKES, KESToUSD: 1 / usdToKES}
}

// ToUSD converts a shilling amount to dollars rounded to cents.
func (r ExchangeRate) ToUSD(kes int) float64 {
	return math.Round(float64(kes)*r.KESToUSD*100) / 100
}
