// Package report shapes validation results for external consumers.
package report

import (
	"order-validator/internal/domain"
)

// Response is the JSON-compatible external shape of a validation result.
type Response struct {
	Status          string            `json:"status"`
	OrderID         string            `json:"order_id,omitempty"`
	CustomerID      string            `json:"customer_id"`
	OrderAmount     float64           `json:"order_amount"`
	Error           *string           `json:"error"`
	Message         string            `json:"message"`
	CreditAvailable float64           `json:"credit_available"`
	CreditShortage  float64           `json:"credit_shortage"`
	Validations     domain.StageFlags `json:"validations"`
}

// FromResult maps an internal result to the response shape. It is a pure
// transformation: status, flags, and numeric fields pass through unchanged.
func FromResult(res domain.ValidationResult) Response {
	resp := Response{
		Status:          string(res.Status),
		OrderID:         res.OrderID,
		CustomerID:      res.CustomerID,
		OrderAmount:     res.OrderAmount.InexactFloat64(),
		Message:         res.Message,
		CreditAvailable: res.CreditAvailable.InexactFloat64(),
		CreditShortage:  res.CreditShortage.InexactFloat64(),
		Validations:     res.Flags,
	}
	if res.Err != nil {
		kind := string(res.Err.Kind())
		resp.Error = &kind
	}
	return resp
}
