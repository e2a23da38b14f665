package directory

import (
	"github.com/shopspring/decimal"

	"order-validator/internal/domain"
)

// Fixture returns a directory seeded with the built-in demo customers used
// when no directory file is configured.
func Fixture() *MemoryDirectory {
	d := NewMemoryDirectory()
	d.Put(domain.CustomerRecord{
		CustomerID:  "CUST001",
		Name:        "Acme Corporation",
		Email:       "contact@acme.com",
		Active:      true,
		CreditLimit: decimal.NewFromInt(10000),
		UsedCredit:  decimal.NewFromInt(2000),
	})
	d.Put(domain.CustomerRecord{
		CustomerID:  "CUST002",
		Name:        "TechStart Inc",
		Email:       "info@techstart.com",
		Active:      true,
		CreditLimit: decimal.NewFromInt(5000),
		UsedCredit:  decimal.NewFromInt(4500),
	})
	d.Put(domain.CustomerRecord{
		CustomerID:  "CUST003",
		Name:        "Global Solutions",
		Email:       "sales@globalsolutions.com",
		Active:      false,
		CreditLimit: decimal.NewFromInt(15000),
		UsedCredit:  decimal.Zero,
	})
	d.Put(domain.CustomerRecord{
		CustomerID:  "CUST004",
		Name:        "Innovation Labs",
		Email:       "hello@innovationlabs.com",
		Active:      true,
		CreditLimit: decimal.NewFromInt(8000),
		UsedCredit:  decimal.NewFromInt(1000),
	})
	d.Put(domain.CustomerRecord{
		CustomerID:  "CUST005",
		Name:        "Enterprise Systems",
		Email:       "contact@enterprise.com",
		Active:      true,
		CreditLimit: decimal.NewFromInt(20000),
		UsedCredit:  decimal.NewFromInt(15000),
	})
	return d
}
