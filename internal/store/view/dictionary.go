package view

import "lookup-bench/internal/core/domain"

// Dictionary answers lookups from the built-in map.
type Dictionary struct {
	items map[string]domain.Record
}

// NewDictionary builds the map by single-pass insertion over ds.
// It starts empty so the runtime grows (and splits) its tables the same way
// it would for an incrementally populated map.
func NewDictionary(ds domain.Dataset) *Dictionary {
	items := make(map[string]domain.Record)
	for _, r := range ds {
		items[r.Key] = r
	}
	return &Dictionary{items: items}
}

func (v *Dictionary) Kind() domain.Kind { return domain.KindDictionary }

func (v *Dictionary) Lookup(key string) (domain.Record, bool) {
	r, ok := v.items[key]
	return r, ok
}

func (v *Dictionary) Len() int { return len(v.items) }
