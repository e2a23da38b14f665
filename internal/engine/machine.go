// Package engine drives the order validation state machine.
package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"order-validator/internal/directory"
	"order-validator/internal/domain"
	"order-validator/internal/parser"
)

// Machine validates orders through a fixed, fail-fast pipeline: customer
// check, item check, credit check. The first failing stage routes directly
// to the rejected state and no later stage runs. A machine is safe for
// concurrent use as long as its directory is safe for concurrent reads.
type Machine struct {
	dir directory.Directory
}

// New creates a validation machine backed by the given directory.
func New(dir directory.Directory) *Machine {
	return &Machine{dir: dir}
}

// stage couples a pipeline step with the machine state it runs in. A stage
// returns nil to continue or a typed error to fail the validation.
type stage struct {
	name  string
	state string
	run   func(*runContext) domain.StageError
}

func (m *Machine) stages() []stage {
	return []stage{
		{name: "customer", state: domain.StateCustomerCheck, run: m.checkCustomer},
		{name: "items", state: domain.StateItemCheck, run: m.checkItems},
		{name: "credit", state: domain.StateCreditCheck, run: m.checkCredit},
	}
}

// runContext carries per-validation state across stages. A fresh context is
// built for every call; nothing is shared between validations.
type runContext struct {
	order           *domain.Order
	customerID      string
	customer        domain.CustomerRecord
	state           string
	flags           domain.StageFlags
	trace           []domain.TraceEntry
	creditAvailable decimal.Decimal
	creditShortage  decimal.Decimal
}

// advance moves the machine to the next state, recording the transition.
// The stage sequence is fixed, so an illegal move here is a defect in the
// transition table, not a business outcome.
func (rc *runContext) advance(to, stage, note string) {
	if err := domain.ValidateTransition(rc.state, to); err != nil {
		panic(err)
	}
	rc.trace = append(rc.trace, domain.TraceEntry{
		FromState: rc.state,
		ToState:   to,
		Stage:     stage,
		Note:      note,
	})
	rc.state = to
}

// Validate runs one order payload through the pipeline and returns the
// assembled result. Business failures become rejected results; Validate
// never fails outright, and a structurally malformed payload yields a
// rejection with the MalformedOrder kind.
func (m *Machine) Validate(payload map[string]any) domain.ValidationResult {
	rc := &runContext{state: domain.StateStart}

	order, err := parser.Parse(payload)
	if err != nil {
		var stageErr domain.StageError
		if !errors.As(err, &stageErr) {
			stageErr = domain.NewMalformedOrderError(err.Error())
		}
		rc.customerID, _ = payload["customer_id"].(string)
		return m.reject(rc, "parse", stageErr)
	}
	rc.order = order
	rc.customerID = order.CustomerID

	note := "order parsed"
	for _, st := range m.stages() {
		rc.advance(st.state, st.name, note)
		if stageErr := st.run(rc); stageErr != nil {
			return m.reject(rc, st.name, stageErr)
		}
		note = st.name + " check passed"
	}

	rc.advance(domain.StateApproved, "approve", note)
	res := m.result(rc)
	res.Status = domain.StatusApproved
	res.Message = fmt.Sprintf("order for customer %s approved, total %s",
		rc.customerID, res.OrderAmount.StringFixed(2))
	return res
}

// reject transitions to the absorbing rejected state and assembles the
// result, preserving whatever stage flags earlier stages already set.
func (m *Machine) reject(rc *runContext, stage string, stageErr domain.StageError) domain.ValidationResult {
	rc.advance(domain.StateRejected, stage, stageErr.Error())
	res := m.result(rc)
	res.Status = domain.StatusRejected
	res.Err = stageErr
	if rc.customerID == "" {
		res.Message = fmt.Sprintf("order rejected: %s", stageErr.Error())
	} else {
		res.Message = fmt.Sprintf("order for customer %s rejected: %s", rc.customerID, stageErr.Error())
	}
	return res
}

// result builds the fields common to approved and rejected outcomes.
func (m *Machine) result(rc *runContext) domain.ValidationResult {
	res := domain.ValidationResult{
		CustomerID:      rc.customerID,
		CreditAvailable: rc.creditAvailable,
		CreditShortage:  rc.creditShortage,
		Flags:           rc.flags,
		Trace:           rc.trace,
	}
	if rc.order != nil {
		res.OrderID = rc.order.ID
		res.OrderAmount = rc.order.DeclaredTotal
	}
	return res
}
