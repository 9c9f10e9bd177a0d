package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidConfiguration is returned for negative sizes, non-positive
	// iteration counts and sampling against an empty dataset.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrKeyGenerationExhausted is returned when the key generator cannot
	// produce enough distinct keys for the requested dataset size.
	ErrKeyGenerationExhausted = errors.New("key generation exhausted")

	// ErrNotFound is returned when a key is absent from a view.
	ErrNotFound = errors.New("key not found")

	// ErrUnknownKind is returned when no view is registered for a kind.
	ErrUnknownKind = errors.New("unknown structure kind")
)

// Kind names a lookup structure.
type Kind string

const (
	KindLinear     Kind = "linear"
	KindHashMap    Kind = "hashmap"
	KindDictionary Kind = "dictionary"
)

// Record is a single key/value pair. It is never mutated after creation.
type Record struct {
	Key   string
	Value string
}

// Dataset is an ordered sequence of records with pairwise distinct keys.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int { return len(d) }

// Keys returns the keys in dataset order.
func (d Dataset) Keys() []string {
	keys := make([]string, len(d))
	for i, r := range d {
		keys[i] = r.Key
	}
	return keys
}

// Measurement is the elapsed time of one full lookup pass over a structure.
type Measurement struct {
	Kind    Kind
	Elapsed time.Duration
}

// Milliseconds returns the elapsed time in fractional milliseconds.
func (m Measurement) Milliseconds() float64 {
	return float64(m.Elapsed) / float64(time.Millisecond)
}

// Result holds the measurements of one data size in measurement order.
type Result struct {
	Measurements []Measurement
}

// Add appends a measurement.
func (r *Result) Add(kind Kind, elapsed time.Duration) {
	r.Measurements = append(r.Measurements, Measurement{Kind: kind, Elapsed: elapsed})
}

// Get returns the measurement recorded for kind.
func (r Result) Get(kind Kind) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Kind == kind {
			return m, true
		}
	}
	return Measurement{}, false
}
