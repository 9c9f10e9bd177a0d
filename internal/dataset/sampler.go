package dataset

import (
	"fmt"

	"lookup-bench/internal/core/domain"
	"lookup-bench/internal/core/ports"
)

// Sampler draws query key sequences from a dataset.
type Sampler struct {
	rnd ports.Rand
}

// NewSampler creates a sampler drawing from rnd.
func NewSampler(rnd ports.Rand) *Sampler {
	return &Sampler{rnd: rnd}
}

// Sample returns iterations keys drawn uniformly, independently and with
// replacement from ds.
func (s *Sampler) Sample(ds domain.Dataset, iterations int) ([]string, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iterations %d: %w", iterations, domain.ErrInvalidConfiguration)
	}
	if ds.Len() == 0 {
		return nil, fmt.Errorf("sampling from empty dataset: %w", domain.ErrInvalidConfiguration)
	}

	keys := make([]string, iterations)
	for i := range keys {
		keys[i] = ds[s.rnd.Intn(len(ds))].Key
	}
	return keys, nil
}
