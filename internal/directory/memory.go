// Package directory provides read-only customer and credit lookups for the
// order validation system.
package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"order-validator/internal/domain"
)

// Directory is the lookup contract the validation core consumes. A
// not-found identifier yields a record with Exists=false and zero fields,
// never an error. Implementations must be safe for concurrent reads.
type Directory interface {
	Lookup(customerID string) domain.CustomerRecord
}

// MemoryDirectory is an in-memory implementation of Directory. Reads and
// writes are guarded so hosts may mutate it between validations.
type MemoryDirectory struct {
	customers map[string]domain.CustomerRecord
	mu        sync.RWMutex
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		customers: make(map[string]domain.CustomerRecord),
	}
}

// Lookup returns the record for a customer ID. Missing customers yield a
// zero record with Exists=false.
func (d *MemoryDirectory) Lookup(customerID string) domain.CustomerRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.customers[customerID]
	if !ok {
		return domain.CustomerRecord{CustomerID: customerID}
	}
	rec.Exists = true
	return rec
}

// Put stores or replaces a customer record.
func (d *MemoryDirectory) Put(rec domain.CustomerRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[rec.CustomerID] = rec
}

// List returns all customer records sorted by ID.
func (d *MemoryDirectory) List() []domain.CustomerRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.customers))
	for id := range d.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]domain.CustomerRecord, 0, len(ids))
	for _, id := range ids {
		rec := d.customers[id]
		rec.Exists = true
		result = append(result, rec)
	}
	return result
}

// Len returns the number of customers in the directory.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.customers)
}

// LoadFile builds a directory from a JSON file holding an array of customer
// records.
func LoadFile(path string) (*MemoryDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}

	var records []domain.CustomerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode directory file: %w", err)
	}

	d := NewMemoryDirectory()
	for _, rec := range records {
		if rec.CustomerID == "" {
			return nil, fmt.Errorf("decode directory file: record without customer_id")
		}
		d.Put(rec)
	}
	return d, nil
}
