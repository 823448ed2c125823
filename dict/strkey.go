package dict

import (
	"fmt"
	"strconv"
)

// StrKey is a dict that canonicalizes keys to strings. Entries are stored
// under the string form of the key, and the missing hook retries failed
// lookups with the canonical form, so Set(2, v) and Get("2") address the
// same entry no matter which spelling was inserted first.
type StrKey[V any] struct {
	*Dict[any, V]
}

// NewStrKey returns an empty string-canonicalizing dict.
func NewStrKey[V any]() StrKey[V] {
	d := WithMissing(func(d *Dict[any, V], key any) (V, bool) {
		if _, ok := key.(string); ok {
			// The key is already canonical, so it is truly absent.
			// Declining here is what keeps the retry from recursing.
			var zero V
			return zero, false
		}
		v, ok := d.Raw()[KeyString(key)]
		return v, ok
	})
	return StrKey[V]{d}
}

// Set stores the given value under the canonical string form of the key.
func (s StrKey[V]) Set(key any, value V) {
	s.Dict.Set(KeyString(key), value)
}

// Delete removes the entry stored under the canonical string form of the
// key and returns true if an entry was removed.
func (s StrKey[V]) Delete(key any) bool {
	return s.Dict.Delete(KeyString(key))
}

// KeyString returns the canonical string form of a loosely typed key.
func KeyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case []byte:
		return string(k)
	case fmt.Stringer:
		return k.String()
	case int:
		return strconv.Itoa(k)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(k), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(k)
	default:
		return fmt.Sprint(key)
	}
}
