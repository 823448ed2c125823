package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonDefault(t *testing.T) {
	tok := NewTokenizer()
	assert.Equal(t, "Señor", tok.Canon("Señor"))

	var none *Tokenizer
	assert.Equal(t, "word", none.Canon("word"))
}

func TestCanonStages(t *testing.T) {
	tok := NewTokenizer(WithFold(), WithShave())
	assert.Equal(t, "cafe", tok.Canon("Café"))
	assert.Equal(t, "senor", tok.Canon("SEÑOR"))
}

func TestCanonMemo(t *testing.T) {
	calls := 0
	tok := NewTokenizer(WithCanon(func(s string) string {
		calls++
		return strings.ToLower(s)
	}))

	assert.Equal(t, "word", tok.Canon("Word"))
	assert.Equal(t, "word", tok.Canon("Word"))
	assert.Equal(t, 1, calls)
}

func TestCanonMemoDisabled(t *testing.T) {
	calls := 0
	tok := NewTokenizer(WithMemo(0), WithCanon(func(s string) string {
		calls++
		return s
	}))

	tok.Canon("x")
	tok.Canon("x")
	assert.Equal(t, 2, calls)
}

func TestCanonMemoEviction(t *testing.T) {
	calls := map[string]int{}
	tok := NewTokenizer(WithMemo(1), WithCanon(func(s string) string {
		calls[s]++
		return s
	}))

	tok.Canon("a")
	tok.Canon("b")
	tok.Canon("a")

	assert.Equal(t, 2, calls["a"])
	assert.Equal(t, 1, calls["b"])
}
