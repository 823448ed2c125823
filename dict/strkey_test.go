package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKeyCoercesLookups(t *testing.T) {
	d := NewStrKey[string]()
	d.Set(2, "two")

	v, err := d.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	v, err = d.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	assert.Equal(t, 1, d.Len())
}

func TestStrKeyCoercesInserts(t *testing.T) {
	d := NewStrKey[string]()
	d.Set("4", "four")

	v, err := d.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "four", v)

	// Overwriting through either spelling hits the same entry.
	d.Set(4, "FOUR")
	assert.Equal(t, "FOUR", d.Lookup("4", ""))
	assert.Equal(t, 1, d.Len())
}

func TestStrKeyMissingStringKey(t *testing.T) {
	d := NewStrKey[string]()
	d.Set(2, "two")

	// A canonical key that is truly absent fails instead of retrying.
	_, err := d.Get("9")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = d.Get(9)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStrKeyConvenienceLookups(t *testing.T) {
	d := NewStrKey[string]()
	d.Set(2, "two")

	assert.True(t, d.Has(2))
	assert.True(t, d.Has("2"))
	assert.False(t, d.Has(3))

	assert.Equal(t, "two", d.Lookup(2, "n/a"))
	assert.Equal(t, "n/a", d.Lookup(3, "n/a"))
}

func TestStrKeyDelete(t *testing.T) {
	d := NewStrKey[string]()
	d.Set("2", "two")

	assert.True(t, d.Delete(2))
	assert.False(t, d.Has("2"))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "2", KeyString(2))
	assert.Equal(t, "2", KeyString(int64(2)))
	assert.Equal(t, "2", KeyString(uint(2)))
	assert.Equal(t, "2", KeyString(2.0))
	assert.Equal(t, "2.5", KeyString(2.5))
	assert.Equal(t, "true", KeyString(true))
	assert.Equal(t, "raw", KeyString([]byte("raw")))
	assert.Equal(t, "text", KeyString("text"))
}
