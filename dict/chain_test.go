package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainPriorityOrder(t *testing.T) {
	overrides := From(map[string]string{"color": "red"})
	defaults := From(map[string]string{"color": "blue", "size": "medium"})

	c := NewChain[string, string](overrides, defaults)

	v, err := c.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "red", v)

	v, err = c.Get("size")
	require.NoError(t, err)
	assert.Equal(t, "medium", v)

	_, err = c.Get("shape")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestChainReflectsLiveMutation(t *testing.T) {
	overrides := New[string, int]()
	defaults := From(map[string]int{"n": 1})

	c := NewChain[string, int](overrides, defaults)
	assert.Equal(t, 1, c.Lookup("n", 0))

	// The view holds references, not copies.
	overrides.Set("n", 2)
	assert.Equal(t, 2, c.Lookup("n", 0))

	defaults.Set("m", 3)
	assert.True(t, c.Has("m"))
}

func TestChainLenCountsDistinctKeys(t *testing.T) {
	a := From(map[string]int{"x": 1, "y": 2})
	b := From(map[string]int{"y": 20, "z": 30})

	c := NewChain[string, int](a, b)
	assert.Equal(t, 3, c.Len())
	assert.ElementsMatch(t, []string{"x", "y", "z"}, c.Keys())
}

func TestChainAllFirstLayerWins(t *testing.T) {
	a := From(map[string]int{"y": 2})
	b := From(map[string]int{"y": 20, "z": 30})

	got := make(map[string]int)
	for k, v := range NewChain[string, int](a, b).All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"y": 2, "z": 30}, got)
}

func TestChainEmpty(t *testing.T) {
	c := NewChain[string, int]()

	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("k"))

	_, err := c.Get("k")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestChainConsultsLayerHooks(t *testing.T) {
	base := NewDefault[string, int](func() int { return -1 })
	c := NewChain[string, int](New[string, int](), base)

	// The default layer fills the key when the chain consults it.
	assert.Equal(t, -1, c.Lookup("fresh", 0))
	assert.True(t, base.Has("fresh"))
}
