package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineItemSubtotal(t *testing.T) {
	item := LineItem{
		ProductName: "Laptop",
		Quantity:    3,
		UnitPrice:   decimal.RequireFromString("1200.50"),
	}

	got := item.Subtotal()
	if got.StringFixed(2) != "3601.50" {
		t.Errorf("Subtotal() = %v, want 3601.50", got)
	}
}

func TestOrderComputedTotal(t *testing.T) {
	order := &Order{
		CustomerID:    "CUST001",
		DeclaredTotal: decimal.RequireFromString("2525.00"),
		Items: []LineItem{
			{ProductName: "Laptop", Quantity: 2, UnitPrice: decimal.RequireFromString("1200.00")},
			{ProductName: "Mouse", Quantity: 5, UnitPrice: decimal.RequireFromString("25.00")},
		},
	}

	got := order.ComputedTotal()
	if got.StringFixed(2) != "2525.00" {
		t.Errorf("ComputedTotal() = %v, want 2525.00", got)
	}
}

func TestOrderComputedTotal_NoItems(t *testing.T) {
	order := &Order{CustomerID: "CUST001"}
	if !order.ComputedTotal().IsZero() {
		t.Errorf("ComputedTotal() = %v, want 0", order.ComputedTotal())
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"half rounds to even down", "2.125", "2.12"},
		{"half rounds to even up", "2.135", "2.14"},
		{"half with even target", "1.005", "1"},
		{"no rounding needed", "10.50", "10.5"},
		{"more than two decimals", "3.14159", "3.14"},
		{"negative half to even", "-2.125", "-2.12"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundMoney(decimal.RequireFromString(tt.input))
			if got.String() != tt.want {
				t.Errorf("RoundMoney(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"exact match", "1500.00", "1500.00", true},
		{"one cent under", "1499.99", "1500.00", true},
		{"one cent over", "1500.01", "1500.00", true},
		{"two cents apart", "1499.98", "1500.00", false},
		{"large mismatch", "100.00", "1500.00", false},
		{"sub-cent difference", "1500.005", "1500.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := decimal.RequireFromString(tt.a)
			b := decimal.RequireFromString(tt.b)
			if got := WithinTolerance(a, b); got != tt.want {
				t.Errorf("WithinTolerance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Tolerance is symmetric.
			if got := WithinTolerance(b, a); got != tt.want {
				t.Errorf("WithinTolerance(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestAvailableCredit(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		used  string
		want  string
	}{
		{"normal headroom", "5000", "1000", "4000"},
		{"fully used", "1000", "1000", "0"},
		{"rounded to two decimals", "100.556", "0.55", "100.01"},
		{"tie rounds to even", "100.555", "0.55", "100"},
		{"zero limit", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := CustomerRecord{
				CustomerID:  "CUST001",
				CreditLimit: decimal.RequireFromString(tt.limit),
				UsedCredit:  decimal.RequireFromString(tt.used),
			}
			if got := rec.AvailableCredit(); got.String() != tt.want {
				t.Errorf("AvailableCredit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		// Valid transitions
		{"START to CUSTOMER_CHECK", StateStart, StateCustomerCheck, true},
		{"START to REJECTED", StateStart, StateRejected, true},
		{"CUSTOMER_CHECK to ITEM_CHECK", StateCustomerCheck, StateItemCheck, true},
		{"CUSTOMER_CHECK to REJECTED", StateCustomerCheck, StateRejected, true},
		{"ITEM_CHECK to CREDIT_CHECK", StateItemCheck, StateCreditCheck, true},
		{"ITEM_CHECK to REJECTED", StateItemCheck, StateRejected, true},
		{"CREDIT_CHECK to APPROVED", StateCreditCheck, StateApproved, true},
		{"CREDIT_CHECK to REJECTED", StateCreditCheck, StateRejected, true},

		// Invalid transitions
		{"START to APPROVED skips checks", StateStart, StateApproved, false},
		{"START to ITEM_CHECK skips customer", StateStart, StateItemCheck, false},
		{"CUSTOMER_CHECK to CREDIT_CHECK skips items", StateCustomerCheck, StateCreditCheck, false},
		{"ITEM_CHECK to APPROVED skips credit", StateItemCheck, StateApproved, false},
		{"no re-entry into earlier stage", StateCreditCheck, StateCustomerCheck, false},
		{"APPROVED is terminal", StateApproved, StateRejected, false},
		{"REJECTED is terminal", StateRejected, StateCustomerCheck, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanTransition_UnknownState(t *testing.T) {
	if CanTransition("UNKNOWN_STATE", StateRejected) {
		t.Error("CanTransition from unknown state should return false")
	}
}

func TestValidateTransition(t *testing.T) {
	if err := ValidateTransition(StateStart, StateCustomerCheck); err != nil {
		t.Errorf("ValidateTransition() unexpected error: %v", err)
	}

	err := ValidateTransition(StateApproved, StateRejected)
	if err == nil {
		t.Fatal("ValidateTransition() expected error for terminal state")
	}
	want := "invalid transition from APPROVED to REJECTED"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

// Test error types

func TestStageErrorKindsAndMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      StageError
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "malformed order",
			err:      NewMalformedOrderError("customer_id is required"),
			wantKind: KindMalformedOrder,
			wantMsg:  "malformed order: customer_id is required",
		},
		{
			name:     "customer not found",
			err:      NewCustomerNotFoundError("CUST999"),
			wantKind: KindCustomerNotFound,
			wantMsg:  "customer CUST999 not found",
		},
		{
			name:     "customer inactive",
			err:      NewCustomerInactiveError("CUST003"),
			wantKind: KindCustomerInactive,
			wantMsg:  "customer CUST003 exists but is inactive",
		},
		{
			name:     "invalid item",
			err:      NewInvalidItemError(2, "quantity", "must be greater than zero"),
			wantKind: KindInvalidItem,
			wantMsg:  "invalid item at position 2: quantity must be greater than zero",
		},
		{
			name: "total mismatch",
			err: NewTotalMismatchError(
				decimal.RequireFromString("1500.02"),
				decimal.RequireFromString("1500.00"),
			),
			wantKind: KindTotalMismatch,
			wantMsg:  "total mismatch: declared 1500.02, computed 1500.00",
		},
		{
			name: "insufficient credit",
			err: NewInsufficientCreditError(
				decimal.RequireFromString("1.00"),
				decimal.RequireFromString("0.00"),
				decimal.RequireFromString("1.00"),
			),
			wantKind: KindInsufficientCredit,
			wantMsg:  "insufficient credit: required 1.00, available 0.00, short 1.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.err.Kind(), tt.wantKind)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}
