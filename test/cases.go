package test

import (
	"bytes"
	"embed"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/quellen/wordhoard/codec"
	"github.com/quellen/wordhoard/index"

	"gopkg.in/yaml.v3"
)

//go:embed cases
var casesFS embed.FS

type TestCase struct {
	// Description is a simple description for the test case.
	Description string
	// Options configure how the corpus tokenizes documents.
	Options Options
	// Documents is a list of documents analyzed in order.
	Documents []Document
	// Search is a list of term queries run after all documents are added.
	Search []Search
	// Unique is the expected number of stored documents after all adds.
	Unique int
}

type Options struct {
	// Fold indexes case insensitively.
	Fold bool
	// Shave strips combining marks from words.
	Shave bool
}

// List converts the options into index options.
func (o Options) List() []index.Option {
	var opts []index.Option
	if o.Fold {
		opts = append(opts, index.WithFold())
	}
	if o.Shave {
		opts = append(opts, index.WithShave())
	}
	return opts
}

type Document struct {
	// Name is the display name of the document.
	Name string
	// Text is the document content as UTF-8.
	Text string
	// Hex is the document content as hex bytes, decoded with Encoding.
	// Exactly one of Text and Hex should be set.
	Hex string
	// Encoding declares the byte encoding of Hex. Empty means UTF-8.
	Encoding string
	// Expect is the report expected from analyzing this document.
	Expect Report
}

// Reader returns the document content as UTF-8 text, decoding Hex with the
// declared encoding.
func (d Document) Reader() (io.Reader, error) {
	if d.Hex == "" {
		return strings.NewReader(d.Text), nil
	}
	raw, err := hex.DecodeString(d.Hex)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", d.Name, err)
	}
	name := d.Encoding
	if name == "" {
		name = codec.Default().Name()
	}
	c, err := codec.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", d.Name, err)
	}
	return c.NewReader(bytes.NewReader(raw)), nil
}

type Report struct {
	// Added is whether analyzing stored new content.
	Added bool
	// Tokens is the total number of word occurrences.
	Tokens int
	// Distinct is the number of distinct terms.
	Distinct int
	// Top holds the expected leading entries of the most-common list.
	Top []TopEntry
}

type TopEntry struct {
	Term  string
	Count int
}

type Search struct {
	// Term is the query.
	Term string
	// Names lists the document names expected to match, in insertion order.
	Names []string
}

// TestCasePaths returns a list of all test case file paths.
func TestCasePaths() (paths []string, _ error) {
	return paths, fs.WalkDir(casesFS, "cases", func(path string, d fs.DirEntry, err error) error {
		if filepath.Ext(path) == ".yaml" {
			paths = append(paths, path)
		}
		return err
	})
}

// LoadTestCase loads and parses a test case file.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := fs.ReadFile(casesFS, path)
	if err != nil {
		return nil, err
	}
	var testCase TestCase
	if err := yaml.Unmarshal(data, &testCase); err != nil {
		return nil, err
	}
	return &testCase, nil
}
