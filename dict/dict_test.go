package dict

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	d := New[string, int]()
	d.Set("one", 1)

	v, err := d.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = d.Get("two")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, d.Len())
}

func TestLookupFallbackLeavesDictUnchanged(t *testing.T) {
	d := New[string, int]()
	d.Set("one", 1)

	assert.Equal(t, 1, d.Lookup("one", -1))
	assert.Equal(t, -1, d.Lookup("two", -1))

	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Has("two"))
}

func TestGetOrSet(t *testing.T) {
	d := New[string, int]()

	assert.Equal(t, 5, d.GetOrSet("k", 5))
	assert.Equal(t, 5, d.GetOrSet("k", 9))

	v, err := d.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestNewDefaultInsertsFactoryValue(t *testing.T) {
	d := NewDefault[string, *[]int](func() *[]int {
		return new([]int)
	})

	v, err := d.Get("occurrences")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Empty(t, *v)
	assert.Equal(t, 1, d.Len())

	*v = append(*v, 10, 18)

	again, err := d.Get("occurrences")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 18}, *again)
}

func TestNewDefaultInsertsOnAnyLookupPath(t *testing.T) {
	d := NewDefault[string, int](func() int { return 42 })

	// the inserting hook wins over the fallback
	assert.Equal(t, 42, d.Lookup("seen", -1))
	assert.Equal(t, 1, d.Len())

	assert.True(t, d.Has("other"))
	assert.Equal(t, 2, d.Len())
}

func TestNewDefaultNilFactory(t *testing.T) {
	d := NewDefault[string, int](nil)

	_, err := d.Get("k")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 0, d.Len())
}

func TestMissingHookOnlyOnAbsence(t *testing.T) {
	calls := 0
	d := WithMissing(func(d *Dict[string, int], key string) (int, bool) {
		calls++
		return 0, false
	})
	d.Set("present", 1)

	_, err := d.Get("present")
	require.NoError(t, err)
	assert.Equal(t, 0, calls)

	_, err = d.Get("absent")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, calls)

	// Lookup and Has route through the hook as well.
	d.Lookup("absent", -1)
	d.Has("absent")
	assert.Equal(t, 3, calls)
}

func TestUpdateOverwrites(t *testing.T) {
	d := From(map[string]int{"a": 1, "b": 2})
	d.Update(maps.All(map[string]int{"b": 20, "c": 30}))

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 20, d.Lookup("b", 0))
	assert.Equal(t, 30, d.Lookup("c", 0))
}

func TestFromCopiesAndWrapShares(t *testing.T) {
	src := map[string]int{"a": 1}

	copied := From(src)
	shared := Wrap(src)
	src["b"] = 2

	assert.Equal(t, 1, copied.Len())
	assert.Equal(t, 2, shared.Len())
	assert.True(t, shared.Has("b"))
}

func TestCollect(t *testing.T) {
	d := Collect(maps.All(map[int]string{1: "one", 2: "two"}))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "two", d.Lookup(2, ""))
}

func TestDelete(t *testing.T) {
	d := From(map[string]int{"a": 1})

	assert.True(t, d.Delete("a"))
	assert.False(t, d.Delete("a"))
	assert.Equal(t, 0, d.Len())
}

func TestNilDictReads(t *testing.T) {
	var d *Dict[string, int]

	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Has("k"))
	assert.Equal(t, 7, d.Lookup("k", 7))
	assert.Empty(t, d.Keys())

	_, err := d.Get("k")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAllYieldsEveryEntry(t *testing.T) {
	d := From(map[string]int{"a": 1, "b": 2, "c": 3})

	got := make(map[string]int)
	for k, v := range d.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
}
