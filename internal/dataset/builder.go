package dataset

import (
	"fmt"
	"strconv"

	"lookup-bench/internal/core/domain"
)

// DefaultMaxAttempts bounds consecutive key collisions for a single record.
const DefaultMaxAttempts = 1 << 16

// Builder assembles datasets of uniquely keyed records.
type Builder struct {
	keys        *KeyGenerator
	maxAttempts int
}

// NewBuilder creates a builder that draws keys from gen.
func NewBuilder(gen *KeyGenerator) *Builder {
	return &Builder{keys: gen, maxAttempts: DefaultMaxAttempts}
}

// WithMaxAttempts overrides the collision budget per record.
func (b *Builder) WithMaxAttempts(n int) *Builder {
	if n > 0 {
		b.maxAttempts = n
	}
	return b
}

// Build returns a dataset of exactly size records. Record i carries the value
// "value<i>". Keys are rejection-sampled against those already accepted.
func (b *Builder) Build(size int) (domain.Dataset, error) {
	if size < 0 {
		return nil, fmt.Errorf("dataset size %d: %w", size, domain.ErrInvalidConfiguration)
	}
	if uint64(size) > b.keys.KeySpace() {
		return nil, fmt.Errorf("dataset size %d exceeds key space %d: %w",
			size, b.keys.KeySpace(), domain.ErrKeyGenerationExhausted)
	}

	ds := make(domain.Dataset, 0, size)
	seen := make(map[string]struct{}, size)
	for i := 0; i < size; i++ {
		key, err := b.uniqueKey(seen)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		seen[key] = struct{}{}
		ds = append(ds, domain.Record{Key: key, Value: "value" + strconv.Itoa(i)})
	}
	return ds, nil
}

func (b *Builder) uniqueKey(seen map[string]struct{}) (string, error) {
	for attempt := 0; attempt < b.maxAttempts; attempt++ {
		key := b.keys.Next()
		if _, dup := seen[key]; !dup {
			return key, nil
		}
	}
	return "", fmt.Errorf("%d consecutive collisions: %w", b.maxAttempts, domain.ErrKeyGenerationExhausted)
}
