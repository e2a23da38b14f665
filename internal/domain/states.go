package domain

// Validation pipeline states as string constants
const (
	StateStart         = "START"
	StateCustomerCheck = "CUSTOMER_CHECK"
	StateItemCheck     = "ITEM_CHECK"
	StateCreditCheck   = "CREDIT_CHECK"
	StateApproved      = "APPROVED"
	StateRejected      = "REJECTED"
)

// AllowedTransitions defines the valid state transitions.
// The key is the current state, and the value is a slice of valid target states.
// The success path is strictly linear; REJECTED is reachable from every
// non-terminal state and absorbs the first failure.
var AllowedTransitions = map[string][]string{
	StateStart: {
		StateCustomerCheck,
		StateRejected, // malformed payload rejects before any check runs
	},
	StateCustomerCheck: {
		StateItemCheck,
		StateRejected,
	},
	StateItemCheck: {
		StateCreditCheck,
		StateRejected,
	},
	StateCreditCheck: {
		StateApproved,
		StateRejected,
	},
	StateApproved: {}, // Terminal state
	StateRejected: {}, // Terminal state
}

// CanTransition checks if a transition from one state to another is allowed.
func CanTransition(from, to string) bool {
	allowed, exists := AllowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an error if the transition is not allowed.
func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return NewInvalidTransitionError(from, to)
	}
	return nil
}
