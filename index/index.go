// Package index builds word indexes recording where each term occurs, and a
// corpus that de-duplicates documents by content fingerprint.
package index

import (
	"io"
	"maps"
	"slices"

	"github.com/quellen/wordhoard/counter"
	"github.com/quellen/wordhoard/dict"
	"github.com/quellen/wordhoard/set"
)

// Position locates one word occurrence. Lines are numbered from one and
// columns count runes from one, so a multibyte character advances the
// column by a single step.
type Position struct {
	Line   int
	Column int
}

// Postings lists every recorded position of a term in document order.
type Postings []Position

// Index maps terms to the positions where they occur.
type Index struct {
	terms *dict.Dict[string, *Postings]
}

func New() *Index {
	return &Index{
		terms: dict.NewDefault[string, *Postings](func() *Postings {
			return new(Postings)
		}),
	}
}

// Scan indexes every word read from r. Options control canonicalization;
// with none, words are indexed exactly as written.
func Scan(r io.Reader, opts ...Option) (*Index, error) {
	return NewTokenizer(opts...).Scan(r)
}

func (x *Index) add(term string, pos Position) {
	// the factory supplies a fresh postings list for unseen terms
	postings, _ := x.terms.Get(term)
	*postings = append(*postings, pos)
}

// Postings returns the recorded positions for term. Reads never grow the
// index; only scanning inserts terms.
func (x *Index) Postings(term string) Postings {
	if postings, ok := x.terms.Raw()[term]; ok {
		return *postings
	}
	return nil
}

// Terms returns all indexed terms in sorted order.
func (x *Index) Terms() []string {
	return slices.Sorted(maps.Keys(x.terms.Raw()))
}

// Vocabulary returns the set of distinct terms.
func (x *Index) Vocabulary() set.Set[string] {
	return set.Collect(maps.Keys(x.terms.Raw()))
}

// Counts returns term frequencies. Terms enter the counter in sorted order,
// so most-common ties resolve alphabetically.
func (x *Index) Counts() *counter.Counter[string] {
	c := counter.New[string]()
	for _, term := range x.Terms() {
		c.Add(term, len(*x.terms.Raw()[term]))
	}
	return c
}

// Top returns the n most frequent terms. n <= 0 means all.
func (x *Index) Top(n int) []counter.Entry[string] {
	return x.Counts().MostCommon(n)
}

// Len returns the number of distinct terms.
func (x *Index) Len() int {
	return x.terms.Len()
}
