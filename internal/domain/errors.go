package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies a validation failure category.
type Kind string

// Failure kinds surfaced in rejected results.
const (
	KindMalformedOrder     Kind = "MalformedOrder"
	KindCustomerNotFound   Kind = "CustomerNotFound"
	KindCustomerInactive   Kind = "CustomerInactive"
	KindInvalidItem        Kind = "InvalidItem"
	KindTotalMismatch      Kind = "TotalMismatch"
	KindInsufficientCredit Kind = "InsufficientCredit"
)

// StageError is a typed validation failure. Every stage either returns a
// success continuation or one of these; the machine never continues past one.
type StageError interface {
	error
	Kind() Kind
}

// InvalidTransitionError represents an invalid state transition attempt.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// NewInvalidTransitionError creates a new InvalidTransitionError.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// MalformedOrderError represents a structurally invalid order payload.
type MalformedOrderError struct {
	Reason string
}

func (e *MalformedOrderError) Error() string {
	return fmt.Sprintf("malformed order: %s", e.Reason)
}

// Kind implements StageError.
func (e *MalformedOrderError) Kind() Kind { return KindMalformedOrder }

// NewMalformedOrderError creates a new MalformedOrderError.
func NewMalformedOrderError(reason string) *MalformedOrderError {
	return &MalformedOrderError{Reason: reason}
}

// CustomerNotFoundError indicates the customer is not in the directory.
type CustomerNotFoundError struct {
	CustomerID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %s not found", e.CustomerID)
}

// Kind implements StageError.
func (e *CustomerNotFoundError) Kind() Kind { return KindCustomerNotFound }

// NewCustomerNotFoundError creates a new CustomerNotFoundError.
func NewCustomerNotFoundError(customerID string) *CustomerNotFoundError {
	return &CustomerNotFoundError{CustomerID: customerID}
}

// CustomerInactiveError indicates the customer exists but is not active.
type CustomerInactiveError struct {
	CustomerID string
}

func (e *CustomerInactiveError) Error() string {
	return fmt.Sprintf("customer %s exists but is inactive", e.CustomerID)
}

// Kind implements StageError.
func (e *CustomerInactiveError) Kind() Kind { return KindCustomerInactive }

// NewCustomerInactiveError creates a new CustomerInactiveError.
func NewCustomerInactiveError(customerID string) *CustomerInactiveError {
	return &CustomerInactiveError{CustomerID: customerID}
}

// InvalidItemError identifies a structurally invalid line item by position
// and offending field.
type InvalidItemError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item at position %d: %s %s", e.Index, e.Field, e.Reason)
}

// Kind implements StageError.
func (e *InvalidItemError) Kind() Kind { return KindInvalidItem }

// NewInvalidItemError creates a new InvalidItemError.
func NewInvalidItemError(index int, field, reason string) *InvalidItemError {
	return &InvalidItemError{Index: index, Field: field, Reason: reason}
}

// TotalMismatchError indicates the declared total does not reconcile with
// the sum of line-item subtotals.
type TotalMismatchError struct {
	Declared decimal.Decimal
	Computed decimal.Decimal
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("total mismatch: declared %s, computed %s",
		e.Declared.StringFixed(2), e.Computed.StringFixed(2))
}

// Kind implements StageError.
func (e *TotalMismatchError) Kind() Kind { return KindTotalMismatch }

// NewTotalMismatchError creates a new TotalMismatchError.
func NewTotalMismatchError(declared, computed decimal.Decimal) *TotalMismatchError {
	return &TotalMismatchError{Declared: declared, Computed: computed}
}

// InsufficientCreditError indicates the order amount exceeds the customer's
// available credit.
type InsufficientCreditError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
	Shortage  decimal.Decimal
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: required %s, available %s, short %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2), e.Shortage.StringFixed(2))
}

// Kind implements StageError.
func (e *InsufficientCreditError) Kind() Kind { return KindInsufficientCredit }

// NewInsufficientCreditError creates a new InsufficientCreditError.
func NewInsufficientCreditError(required, available, shortage decimal.Decimal) *InsufficientCreditError {
	return &InsufficientCreditError{Required: required, Available: available, Shortage: shortage}
}
