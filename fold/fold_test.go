package fold

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestComposedAndDecomposedSpellings(t *testing.T) {
	composed := "café"
	decomposed := "café"

	// Identical on screen, different as code point sequences.
	require.NotEqual(t, composed, decomposed)
	assert.Equal(t, 4, utf8.RuneCountInString(composed))
	assert.Equal(t, 5, utf8.RuneCountInString(decomposed))

	assert.True(t, Equivalent(composed, decomposed))
	assert.Equal(t, composed, NFC(decomposed))
	assert.Equal(t, decomposed, NFD(composed))
	assert.Equal(t, NFC(composed), NFC(decomposed))
	assert.Equal(t, NFD(composed), NFD(decomposed))
}

func TestSingletonComposition(t *testing.T) {
	// OHM SIGN composes to GREEK CAPITAL LETTER OMEGA.
	assert.Equal(t, "Ω", NFC("Ω"))
	assert.True(t, Equivalent("Ω", "Ω"))
}

func TestCompatibilityForms(t *testing.T) {
	assert.Equal(t, "1⁄2", NFKC("½"))
	assert.Equal(t, "μ", NFKC("µ"))
	// NFC leaves compatibility characters alone.
	assert.Equal(t, "½", NFC("½"))
}

func TestCaselessEqual(t *testing.T) {
	assert.True(t, CaselessEqual("MICRO", "micro"))
	assert.True(t, CaselessEqual("µ", "μ"))
	assert.True(t, CaselessEqual("café", "CAFÉ"))
	// full case folding spells out sharp s
	assert.True(t, CaselessEqual("straße", "STRASSE"))
	assert.False(t, CaselessEqual("straße", "strasze"))
}

func TestMapKeysDistinctUntilNormalized(t *testing.T) {
	m := map[string]int{
		"café":  1,
		"café": 2,
	}
	require.Len(t, m, 2)

	d := Keyed(m)
	assert.Equal(t, 1, d.Len())
	assert.True(t, d.Has("café"))
}

func TestTurkishCasing(t *testing.T) {
	assert.Equal(t, "istanbul", Lower(language.Turkish, "İSTANBUL"))
	assert.Equal(t, "İSTANBUL", Upper(language.Turkish, "istanbul"))
	assert.Equal(t, "hello", Lower(language.Und, "HELLO"))
}
