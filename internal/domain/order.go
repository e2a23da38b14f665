// Package domain contains the core business entities and rules for the
// order validation system.
package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem is a single product line within an order.
type LineItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity * unit price for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order is the typed representation of an incoming order payload.
type Order struct {
	ID            string
	CustomerID    string
	DeclaredTotal decimal.Decimal
	Items         []LineItem
}

// ComputedTotal returns the sum of all line-item subtotals.
func (o *Order) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
