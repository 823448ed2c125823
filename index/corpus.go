package index

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/quellen/wordhoard/counter"
	"github.com/quellen/wordhoard/omap"
	"github.com/quellen/wordhoard/storage"

	"github.com/google/uuid"
)

// Document describes one unique piece of content in a corpus.
type Document struct {
	ID          string
	Name        string
	Fingerprint Fingerprint
}

// Corpus is a de-duplicating document collection. Content lives in a
// storage backend keyed by fingerprint, so byte-identical documents are
// stored once no matter how often they are added.
type Corpus struct {
	storage storage.Storage
	docs    *omap.Ordered[string, Document]
	byPrint map[Fingerprint]string
	tok     *Tokenizer
}

// NewCorpus creates an empty corpus over st. Options configure how
// documents are tokenized by Scan and Search.
func NewCorpus(st storage.Storage, opts ...Option) *Corpus {
	return &Corpus{
		storage: st,
		docs:    omap.New[string, Document](),
		byPrint: make(map[Fingerprint]string),
		tok:     NewTokenizer(opts...),
	}
}

// Add stores the content of r under a fresh id. Adding content already in
// the corpus stores nothing and returns the existing document's id with
// added false; the original name is kept.
func (c *Corpus) Add(ctx context.Context, name string, r io.Reader) (string, bool, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", false, fmt.Errorf("read document: %w", err)
	}
	sum := Sum(content)
	if id, ok := c.byPrint[sum]; ok {
		return id, false, nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", false, err
	}
	if err := c.storage.Put(ctx, sum.String(), content); err != nil {
		return "", false, err
	}
	doc := Document{ID: id.String(), Name: name, Fingerprint: sum}
	c.docs.Set(doc.ID, doc)
	c.byPrint[sum] = doc.ID
	return doc.ID, true, nil
}

// Read returns the text of the document with the given id.
func (c *Corpus) Read(ctx context.Context, id string) (string, error) {
	doc, ok := c.docs.Get(id)
	if !ok {
		return "", fmt.Errorf("document %s: %w", id, storage.ErrNotFound)
	}
	content, err := c.storage.Get(ctx, doc.Fingerprint.String())
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Delete removes the document and its stored content.
func (c *Corpus) Delete(ctx context.Context, id string) error {
	doc, ok := c.docs.Get(id)
	if !ok {
		return fmt.Errorf("document %s: %w", id, storage.ErrNotFound)
	}
	if err := c.storage.Delete(ctx, doc.Fingerprint.String()); err != nil {
		return err
	}
	c.docs.Delete(id)
	delete(c.byPrint, doc.Fingerprint)
	return nil
}

// ForEach visits documents in insertion order, stopping at the first error.
func (c *Corpus) ForEach(fn func(Document) error) error {
	for _, doc := range c.docs.All() {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

// Dump returns a map of document names to ids.
//
// This function is primarily used for testing.
func (c *Corpus) Dump() map[string][]string {
	docs := make(map[string][]string)
	for _, doc := range c.docs.All() {
		docs[doc.Name] = append(docs[doc.Name], doc.ID)
	}
	return docs
}

// Len returns the number of unique documents.
func (c *Corpus) Len() int {
	return c.docs.Len()
}

// Scan indexes r with the corpus tokenizer.
func (c *Corpus) Scan(r io.Reader) (*Index, error) {
	return c.tok.Scan(r)
}

// Hit is one document matched by Search.
type Hit struct {
	ID       string
	Name     string
	Postings Postings
}

// Search scans every document for term, canonicalized the same way the
// corpus indexes words. Documents are reported in insertion order.
func (c *Corpus) Search(ctx context.Context, term string) ([]Hit, error) {
	canon := c.tok.Canon(term)
	var hits []Hit
	for id, doc := range c.docs.All() {
		text, err := c.Read(ctx, id)
		if err != nil {
			return nil, err
		}
		x, err := c.tok.Scan(strings.NewReader(text))
		if err != nil {
			return nil, err
		}
		if postings := x.Postings(canon); len(postings) > 0 {
			hits = append(hits, Hit{ID: id, Name: doc.Name, Postings: postings})
		}
	}
	return hits, nil
}

// Report summarizes one analyzed document.
type Report struct {
	ID       string
	Name     string
	Added    bool
	Tokens   int
	Distinct int
	Terms    []string
	Top      []counter.Entry[string]
}
