package view

import "lookup-bench/internal/core/domain"

// Linear answers lookups by scanning the dataset in order.
type Linear struct {
	records domain.Dataset
}

// NewLinear wraps ds without copying it.
func NewLinear(ds domain.Dataset) *Linear {
	return &Linear{records: ds}
}

func (v *Linear) Kind() domain.Kind { return domain.KindLinear }

// Lookup performs an O(N) scan comparing each record's key.
func (v *Linear) Lookup(key string) (domain.Record, bool) {
	for i := range v.records {
		if v.records[i].Key == key {
			return v.records[i], true
		}
	}
	return domain.Record{}, false
}

func (v *Linear) Len() int { return len(v.records) }
