package domain

import "github.com/shopspring/decimal"

// CustomerRecord is the directory's view of a customer. The core treats it
// as immutable, read-only input for the duration of one validation.
type CustomerRecord struct {
	CustomerID  string          `json:"customer_id"`
	Name        string          `json:"name,omitempty"`
	Email       string          `json:"email,omitempty"`
	Exists      bool            `json:"-"`
	Active      bool            `json:"active"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	UsedCredit  decimal.Decimal `json:"used_credit"`
}

// AvailableCredit returns the customer's remaining credit, rounded to two
// decimals.
func (c CustomerRecord) AvailableCredit() decimal.Decimal {
	return RoundMoney(c.CreditLimit.Sub(c.UsedCredit))
}
