package store

import (
	"fmt"

	"lookup-bench/internal/core/domain"
	"lookup-bench/internal/core/ports"
	"lookup-bench/internal/store/view"
)

// Factory builds one view over a dataset.
type Factory func(ds domain.Dataset) ports.View

// DefaultFactories builds the linear, hashmap and dictionary views, in the
// order they are measured and reported.
var DefaultFactories = []Factory{
	func(ds domain.Dataset) ports.View { return view.NewLinear(ds) },
	func(ds domain.Dataset) ports.View { return view.NewHashMap(ds) },
	func(ds domain.Dataset) ports.View { return view.NewDictionary(ds) },
}

// StructureSet is a group of read-only views over the same dataset.
type StructureSet struct {
	views  []ports.View
	byKind map[domain.Kind]ports.View
}

// Prepare builds the default views over ds.
func Prepare(ds domain.Dataset) *StructureSet {
	return PrepareWith(ds, DefaultFactories...)
}

// PrepareWith builds one view per factory over ds, preserving factory order.
func PrepareWith(ds domain.Dataset, factories ...Factory) *StructureSet {
	s := &StructureSet{
		views:  make([]ports.View, 0, len(factories)),
		byKind: make(map[domain.Kind]ports.View, len(factories)),
	}
	for _, f := range factories {
		v := f(ds)
		s.views = append(s.views, v)
		s.byKind[v.Kind()] = v
	}
	return s
}

// Views returns the views in measurement order.
func (s *StructureSet) Views() []ports.View {
	return s.views
}

// View returns the view registered for kind.
func (s *StructureSet) View(kind domain.Kind) (ports.View, bool) {
	v, ok := s.byKind[kind]
	return v, ok
}

// Lookup finds key in the view of the given kind.
func (s *StructureSet) Lookup(kind domain.Kind, key string) (domain.Record, error) {
	v, ok := s.byKind[kind]
	if !ok {
		return domain.Record{}, fmt.Errorf("%s: %w", kind, domain.ErrUnknownKind)
	}
	r, found := v.Lookup(key)
	if !found {
		return domain.Record{}, fmt.Errorf("%s lookup %q: %w", kind, key, domain.ErrNotFound)
	}
	return r, nil
}
