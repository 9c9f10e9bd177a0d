package store

import (
	"errors"
	"testing"

	"lookup-bench/internal/core/domain"
	"lookup-bench/internal/core/ports"
	"lookup-bench/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []domain.Kind{domain.KindLinear, domain.KindHashMap, domain.KindDictionary}

func buildDataset(t *testing.T, seed uint64, size int) domain.Dataset {
	t.Helper()
	ds, err := dataset.NewBuilder(dataset.NewKeyGenerator(dataset.NewRand(seed))).Build(size)
	require.NoError(t, err)
	return ds
}

func TestPrepare_Order(t *testing.T) {
	s := Prepare(buildDataset(t, 1, 5))

	var kinds []domain.Kind
	for _, v := range s.Views() {
		kinds = append(kinds, v.Kind())
		assert.Equal(t, 5, v.Len())
	}
	assert.Equal(t, allKinds, kinds)
}

func TestStructureSet_CrossStructureEquivalence(t *testing.T) {
	for _, size := range []int{1, 10, 900, 1500} {
		ds := buildDataset(t, 21, size)
		s := Prepare(ds)

		for _, want := range ds {
			for _, kind := range allKinds {
				got, err := s.Lookup(kind, want.Key)
				require.NoError(t, err, "size=%d kind=%s", size, kind)
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestStructureSet_KnownIndex(t *testing.T) {
	ds := buildDataset(t, 10, 10)
	s := Prepare(ds)

	key := ds[3].Key
	for _, kind := range allKinds {
		got, err := s.Lookup(kind, key)
		require.NoError(t, err)
		assert.Equal(t, key, got.Key)
		assert.Equal(t, "value3", got.Value)
	}
}

func TestStructureSet_MissConsistency(t *testing.T) {
	s := Prepare(buildDataset(t, 4, 100))

	// Keys are alphanumeric, so a dash can never appear in a dataset.
	for _, key := range []string{"", "not-a-key", "----------"} {
		for _, kind := range allKinds {
			_, err := s.Lookup(kind, key)
			assert.True(t, errors.Is(err, domain.ErrNotFound), "kind=%s key=%q", kind, key)
		}
	}
}

func TestStructureSet_EmptyDataset(t *testing.T) {
	s := Prepare(domain.Dataset{})
	for _, kind := range allKinds {
		_, err := s.Lookup(kind, "abcde")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	}
}

func TestStructureSet_UnknownKind(t *testing.T) {
	s := Prepare(buildDataset(t, 1, 3))
	_, err := s.Lookup(domain.Kind("btree"), "x")
	assert.True(t, errors.Is(err, domain.ErrUnknownKind))

	_, ok := s.View(domain.Kind("btree"))
	assert.False(t, ok)
}

type reversedView struct{ ports.View }

func (reversedView) Kind() domain.Kind { return "reversed" }

func TestPrepareWith_CustomFactories(t *testing.T) {
	ds := buildDataset(t, 2, 4)
	s := PrepareWith(ds,
		DefaultFactories[2],
		func(ds domain.Dataset) ports.View { return reversedView{View: DefaultFactories[0](ds)} },
	)

	require.Len(t, s.Views(), 2)
	assert.Equal(t, domain.KindDictionary, s.Views()[0].Kind())
	assert.Equal(t, domain.Kind("reversed"), s.Views()[1].Kind())

	got, err := s.Lookup("reversed", ds[0].Key)
	require.NoError(t, err)
	assert.Equal(t, ds[0], got)
}
