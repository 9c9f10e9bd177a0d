package ports

import (
	"time"

	"lookup-bench/internal/core/domain"
)

// Rand is the random source used for key generation and key sampling.
// Injecting it makes datasets and query sequences reproducible from a seed.
type Rand interface {
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Clock abstracts wall-clock time so measurements can be faked in tests.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// View is a read-only lookup structure built over a dataset.
type View interface {
	// Kind identifies the structure in reports.
	Kind() domain.Kind

	// Lookup returns the record stored under key and whether it was found.
	Lookup(key string) (domain.Record, bool)

	// Len returns the number of records in the view.
	Len() int
}
