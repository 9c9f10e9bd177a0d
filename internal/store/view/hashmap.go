package view

import (
	"lookup-bench/internal/core/domain"

	"github.com/dolthub/swiss"
)

// HashMap answers lookups from an explicit SwissTable hash table.
// The table rehashes when its load factor is exceeded, so lookup cost is
// not monotonic in the number of records.
type HashMap struct {
	table *swiss.Map[string, domain.Record]
}

// NewHashMap builds the table by single-pass insertion over ds.
func NewHashMap(ds domain.Dataset) *HashMap {
	table := swiss.NewMap[string, domain.Record](uint32(len(ds)))
	for _, r := range ds {
		table.Put(r.Key, r)
	}
	return &HashMap{table: table}
}

func (v *HashMap) Kind() domain.Kind { return domain.KindHashMap }

func (v *HashMap) Lookup(key string) (domain.Record, bool) {
	return v.table.Get(key)
}

func (v *HashMap) Len() int { return v.table.Count() }
