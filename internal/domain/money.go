package domain

import "github.com/shopspring/decimal"

// totalTolerance is the maximum absolute discrepancy allowed between a
// computed order total and the declared total.
var totalTolerance = decimal.New(1, -2) // 0.01

// RoundMoney rounds a monetary value to two decimals, half to even.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// WithinTolerance reports whether two monetary values differ by at most
// one cent.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(totalTolerance)
}
