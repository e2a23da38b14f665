package engine

import (
	"order-validator/internal/domain"
)

// checkCustomer verifies the customer exists in the directory and is
// active. The record is carried forward for the credit stage, so the
// directory is hit exactly once per validation.
func (m *Machine) checkCustomer(rc *runContext) domain.StageError {
	rec := m.dir.Lookup(rc.order.CustomerID)
	if !rec.Exists {
		return domain.NewCustomerNotFoundError(rc.order.CustomerID)
	}
	rc.flags.CustomerExists = true

	if !rec.Active {
		return domain.NewCustomerInactiveError(rc.order.CustomerID)
	}
	rc.flags.CustomerActive = true

	rc.customer = rec
	return nil
}

// checkItems validates every line item structurally, then reconciles the
// computed total against the declared total within the one-cent tolerance.
func (m *Machine) checkItems(rc *runContext) domain.StageError {
	for i, item := range rc.order.Items {
		if item.ProductName == "" {
			return domain.NewInvalidItemError(i, "product_name", "must not be empty")
		}
		if item.Quantity <= 0 {
			return domain.NewInvalidItemError(i, "quantity", "must be greater than zero")
		}
		if !item.UnitPrice.IsPositive() {
			return domain.NewInvalidItemError(i, "unit_price", "must be greater than zero")
		}
	}

	computed := rc.order.ComputedTotal()
	if !domain.WithinTolerance(computed, rc.order.DeclaredTotal) {
		return domain.NewTotalMismatchError(rc.order.DeclaredTotal, computed)
	}

	rc.flags.ItemsValid = true
	return nil
}

// checkCredit compares the order amount against the customer's available
// credit. On failure the result still carries the available credit and the
// computed shortage.
func (m *Machine) checkCredit(rc *runContext) domain.StageError {
	available := rc.customer.AvailableCredit()
	rc.creditAvailable = available

	amount := rc.order.DeclaredTotal
	if amount.GreaterThan(available) {
		shortage := domain.RoundMoney(amount.Sub(available))
		rc.creditShortage = shortage
		return domain.NewInsufficientCreditError(amount, available, shortage)
	}

	rc.flags.HasCredit = true
	return nil
}
