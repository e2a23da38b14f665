package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"order-validator/internal/domain"
)

// ValidateBatch validates independent order payloads concurrently, running
// at most limit validations at a time (unbounded when limit <= 0). Results
// keep the input order. The only error it can return is cancellation of the
// supplied context.
func (m *Machine) ValidateBatch(ctx context.Context, payloads []map[string]any, limit int) ([]domain.ValidationResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]domain.ValidationResult, len(payloads))
	for i, payload := range payloads {
		i, payload := i, payload
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = m.Validate(payload)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
