package wordhoard

import (
	"context"
	"io"
	"strings"

	"github.com/quellen/wordhoard/index"
	"github.com/quellen/wordhoard/storage"
)

// topTerms is the number of most frequent terms included in a Report.
const topTerms = 10

// Open creates a corpus backed by the given store.
func Open(st storage.Storage, opts ...index.Option) *index.Corpus {
	return index.NewCorpus(st, opts...)
}

// Analyze adds the document read from r to the corpus and reports on its
// vocabulary. Content already in the corpus is not stored again; the report
// then carries the existing document's id with Added false.
func Analyze(ctx context.Context, corpus *index.Corpus, name string, r io.Reader) (*index.Report, error) {
	id, added, err := corpus.Add(ctx, name, r)
	if err != nil {
		return nil, err
	}
	text, err := corpus.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	x, err := corpus.Scan(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	counts := x.Counts()
	return &index.Report{
		ID:       id,
		Name:     name,
		Added:    added,
		Tokens:   counts.Total(),
		Distinct: x.Len(),
		Terms:    x.Terms(),
		Top:      counts.MostCommon(topTerms),
	}, nil
}
