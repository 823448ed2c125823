package index

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/quellen/wordhoard/cache"
	"github.com/quellen/wordhoard/fold"
)

const defaultMemoSize = 512

// Tokenizer splits text into words and canonicalizes them. The zero value
// indexes words exactly as written.
type Tokenizer struct {
	stages   []func(string) string
	memoSize int
	memo     *cache.LRU[string, string]
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithFold indexes case insensitively by Unicode case folding every word.
func WithFold() Option {
	return func(t *Tokenizer) {
		t.stages = append(t.stages, fold.Casefold)
	}
}

// WithShave strips combining marks from words, so "café" and "cafe" share
// an entry.
func WithShave() Option {
	return func(t *Tokenizer) {
		t.stages = append(t.stages, fold.ShaveMarks)
	}
}

// WithCanon appends a custom canonicalization stage.
func WithCanon(fn func(string) string) Option {
	return func(t *Tokenizer) {
		t.stages = append(t.stages, fn)
	}
}

// WithMemo bounds the canonicalization memo to n entries. Zero or negative
// disables memoization.
func WithMemo(n int) Option {
	return func(t *Tokenizer) {
		t.memoSize = n
	}
}

func NewTokenizer(opts ...Option) *Tokenizer {
	t := &Tokenizer{memoSize: defaultMemoSize}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.stages) > 0 && t.memoSize > 0 {
		t.memo = cache.New[string, string](t.memoSize)
	}
	return t
}

// Canon returns the canonical form of word under the tokenizer's stages.
func (t *Tokenizer) Canon(word string) string {
	if t == nil || len(t.stages) == 0 {
		return word
	}
	if t.memo != nil {
		if canon, ok := t.memo.Get(word); ok {
			return canon
		}
	}
	canon := word
	for _, stage := range t.stages {
		canon = stage(canon)
	}
	if t.memo != nil {
		t.memo.Put(word, canon)
	}
	return canon
}

// Scan indexes every word read from r, recording the line and rune column
// of each occurrence. Lines may be arbitrarily long.
func (t *Tokenizer) Scan(r io.Reader) (*Index, error) {
	x := New()
	reader := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("scan words: %w", err)
		}
		t.scanLine(x, line, text)
		if err == io.EOF {
			return x, nil
		}
	}
}

// scanLine adds every word of one line to the index. The trailing newline,
// if present, is just another separator.
func (t *Tokenizer) scanLine(x *Index, line int, text string) {
	var (
		word    []rune
		wordCol int
		column  int
	)
	for _, c := range text {
		column++
		if isWordRune(c) {
			if len(word) == 0 {
				wordCol = column
			}
			word = append(word, c)
			continue
		}
		if len(word) > 0 {
			x.add(t.Canon(string(word)), Position{Line: line, Column: wordCol})
			word = word[:0]
		}
	}
	if len(word) > 0 {
		x.add(t.Canon(string(word)), Position{Line: line, Column: wordCol})
	}
}

// isWordRune mirrors the \w character class extended with marks: letters,
// digits, combining marks, underscore. A mark continues the current word, so
// decomposed spellings tokenize as single words.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}
