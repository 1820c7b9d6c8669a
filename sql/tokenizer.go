package sql

import (
	"io"

	scantok "github.com/go-scantok/scantok"
)

// Tokenizer pairs a scantok.Scanner with a Splitter, giving callers a
// one-call-per-token ergonomic without having to wire up Scanner/Splitter
// plumbing themselves.
type Tokenizer struct {
	scanner *scantok.Scanner
}

// NewTokenizer returns a Tokenizer reading SQL text from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{scanner: scantok.New(r, NewSplitter())}
}

// Next returns the next token, io.EOF once the input is exhausted, or a
// tokenization/I/O error.
func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.scanner.Scan()
	if err != nil {
		return Token{}, err
	}
	kind, _ := tok.Classification.(Kind)
	return Token{Kind: kind, Text: tok.Bytes}, nil
}

// Line returns the tokenizer's current 1-based line.
func (t *Tokenizer) Line() int64 { return t.scanner.Line() }

// Column returns the tokenizer's current 1-based column.
func (t *Tokenizer) Column() int { return t.scanner.Column() }
