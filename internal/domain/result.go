package domain

import "github.com/shopspring/decimal"

// Status is the terminal outcome of a validation run.
type Status string

// Terminal statuses.
const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// StageFlags records which validation stages completed successfully. Each
// flag stays false until its stage executes and passes its check.
type StageFlags struct {
	CustomerExists bool `json:"customer_exists"`
	CustomerActive bool `json:"customer_active"`
	ItemsValid     bool `json:"items_valid"`
	HasCredit      bool `json:"has_credit"`
}

// TraceEntry records a single state transition taken by the machine.
type TraceEntry struct {
	FromState string
	ToState   string
	Stage     string
	Note      string
}

// ValidationResult is the outcome record assembled by the state machine for
// one order. All fields are fixed once the result is returned.
type ValidationResult struct {
	Status          Status
	OrderID         string
	CustomerID      string
	OrderAmount     decimal.Decimal
	Err             StageError // nil iff Status is approved
	Message         string
	CreditAvailable decimal.Decimal
	CreditShortage  decimal.Decimal
	Flags           StageFlags
	Trace           []TraceEntry
}
