// Package csv implements a permissive, RFC 4180-plus-extensions field
// splitter over scantok.Scanner: one call in, one field out, with an
// end-of-record flag the caller consults after each field.
package csv

import (
	"bytes"
	"io"

	scantok "github.com/go-scantok/scantok"
)

// Config holds the primitive tunables of the field splitter. There is no
// dynamic option bag; every knob is a plain field with a documented zero
// value.
type Config struct {
	// Sep is the field separator byte. The zero value is invalid; use
	// DefaultConfig or set Sep explicitly.
	Sep byte
	// Quoted enables RFC 4180 double-quote field recognition.
	Quoted bool
	// Trim strips leading/trailing ASCII spaces from unquoted fields.
	Trim bool
	// Comment, if nonzero, marks lines whose first byte equals Comment as
	// a single empty field with EndOfRecord true.
	Comment byte
	// Lazy relaxes quote handling: a `"` inside a quoted field that is not
	// followed by Sep, '\n', or "\r\n" is kept as literal content instead of
	// raising UnescapedQuoteError. A `"` followed by a '\r' that ends the
	// input is still taken as the closing quote.
	Lazy bool
}

// DefaultConfig returns a comma-separated, quote-aware configuration with
// trimming and comments disabled.
func DefaultConfig() Config {
	return Config{Sep: ',', Quoted: true}
}

// FieldKind classifies how a field's raw bytes were recognized.
type FieldKind int

const (
	// Unquoted is a field with no surrounding quotes.
	Unquoted FieldKind = iota
	// Quoted is a quoted field with no doubled-quote escapes.
	Quoted
	// QuotedEscaped is a quoted field that required un-escaping doubled
	// quotes.
	QuotedEscaped
)

func (k FieldKind) String() string {
	switch k {
	case Unquoted:
		return "Unquoted"
	case Quoted:
		return "Quoted"
	case QuotedEscaped:
		return "QuotedEscaped"
	default:
		return "FieldKind(?)"
	}
}

// Splitter implements scantok.Splitter, emitting one field per call. eor
// tracks whether the most recently emitted field ended a record; it starts
// true, so EndOfRecord reports true before any field has been read and the
// first field of a stream is recognized as the start of a record (which
// matters for Config.Comment detection).
type Splitter struct {
	cfg Config
	eor bool
}

// NewSplitter returns a ready-to-use CSV Splitter configured by cfg.
func NewSplitter(cfg Config) *Splitter {
	return &Splitter{cfg: cfg, eor: true}
}

// EndOfRecord reports whether the field most recently returned by Split
// ended a record.
func (s *Splitter) EndOfRecord() bool { return s.eor }

// Split implements scantok.Splitter.
func (s *Splitter) Split(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) == 0 {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if s.eor && s.cfg.Comment != 0 && data[0] == s.cfg.Comment {
		return s.splitComment(data, eof)
	}
	if s.cfg.Quoted && data[0] == '"' {
		return s.splitQuoted(data, eof)
	}
	return s.splitUnquoted(data, eof)
}

func (s *Splitter) splitComment(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		s.eor = true
		return scantok.TokenFound, data[:0], Unquoted, len(data), nil
	}
	s.eor = true
	return scantok.TokenFound, data[:0], Unquoted, i + 1, nil
}

func (s *Splitter) splitUnquoted(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case s.cfg.Sep:
			s.eor = false
			return scantok.TokenFound, s.maybeTrim(data[:i]), Unquoted, i + 1, nil
		case '\n':
			end := i
			if end > 0 && data[end-1] == '\r' {
				end--
			}
			s.eor = true
			return scantok.TokenFound, s.maybeTrim(data[:end]), Unquoted, i + 1, nil
		}
	}
	if !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	s.eor = true
	return scantok.TokenFound, s.maybeTrim(data), Unquoted, len(data), nil
}

// splitQuoted scans a `"`-delimited field. escaped counts doubled-quote
// pairs so the eventual un-escape walk knows how much to collapse.
func (s *Splitter) splitQuoted(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	escaped := 0
	i := 1
	for i < len(data) {
		if data[i] != '"' {
			i++
			continue
		}
		if i+1 >= len(data) {
			if !eof {
				return scantok.NeedMore, nil, nil, 0, nil
			}
			s.eor = true
			return scantok.TokenFound, unescape(data[1:i], escaped), quoteKind(escaped), i + 1, nil
		}
		if data[i+1] == '"' {
			escaped++
			i += 2
			continue
		}
		switch data[i+1] {
		case s.cfg.Sep:
			s.eor = false
			return scantok.TokenFound, unescape(data[1:i], escaped), quoteKind(escaped), i + 2, nil
		case '\n':
			s.eor = true
			return scantok.TokenFound, unescape(data[1:i], escaped), quoteKind(escaped), i + 2, nil
		case '\r':
			if i+2 >= len(data) {
				if !eof {
					return scantok.NeedMore, nil, nil, 0, nil
				}
				// Trailing bare \r at end of stream: treat like a
				// terminator rather than stray content.
				s.eor = true
				return scantok.TokenFound, unescape(data[1:i], escaped), quoteKind(escaped), i + 2, nil
			}
			if data[i+2] == '\n' {
				s.eor = true
				return scantok.TokenFound, unescape(data[1:i], escaped), quoteKind(escaped), i + 3, nil
			}
			if s.cfg.Lazy {
				i++
				continue
			}
			return scantok.ErrorFound, nil, nil, 0, &UnescapedQuoteError{Byte: data[i+1]}
		default:
			if s.cfg.Lazy {
				i++
				continue
			}
			return scantok.ErrorFound, nil, nil, 0, &UnescapedQuoteError{Byte: data[i+1]}
		}
	}
	if eof {
		return scantok.ErrorFound, nil, nil, 0, &UnterminatedQuotedFieldError{}
	}
	return scantok.NeedMore, nil, nil, 0, nil
}

func quoteKind(escaped int) FieldKind {
	if escaped > 0 {
		return QuotedEscaped
	}
	return Quoted
}

// unescape rewrites b in place, collapsing each doubled `""` into a single
// `"`: a two-index read/write walk that, on reading a quote character
// followed by another quote, skips that second quote (the doubled partner).
// A lone quote kept under Config.Lazy is copied through unchanged.
func unescape(b []byte, escaped int) []byte {
	if escaped == 0 {
		return b
	}
	w := 0
	for r := 0; r < len(b); r++ {
		c := b[r]
		b[w] = c
		w++
		if c == '"' && r+1 < len(b) && b[r+1] == '"' {
			r++
		}
	}
	return b[:w]
}

func (s *Splitter) maybeTrim(b []byte) []byte {
	if !s.cfg.Trim {
		return b
	}
	start, end := 0, len(b)
	for start < end && b[start] == ' ' {
		start++
	}
	for end > start && b[end-1] == ' ' {
		end--
	}
	return b[start:end]
}

// Reader pairs a scantok.Scanner with a Splitter, giving callers a
// one-call-per-field ergonomic without wiring up Scanner/Splitter plumbing
// themselves.
type Reader struct {
	scanner  *scantok.Scanner
	splitter *Splitter
	lastKind FieldKind
}

// NewReader returns a Reader over r configured by cfg.
func NewReader(r io.Reader, cfg Config) *Reader {
	sp := NewSplitter(cfg)
	return &Reader{scanner: scantok.New(r, sp), splitter: sp}
}

// ReadField returns the next field, whether it ends a record, and any
// tokenization or I/O error. err is io.EOF once the input is exhausted.
func (r *Reader) ReadField() (field []byte, eor bool, err error) {
	tok, err := r.scanner.Scan()
	if err != nil {
		return nil, false, err
	}
	r.lastKind, _ = tok.Classification.(FieldKind)
	return tok.Bytes, r.splitter.EndOfRecord(), nil
}

// Kind returns the FieldKind of the field most recently returned by
// ReadField.
func (r *Reader) Kind() FieldKind { return r.lastKind }

// Line returns the reader's current 1-based line.
func (r *Reader) Line() int64 { return r.scanner.Line() }

// Column returns the reader's current 1-based column.
func (r *Reader) Column() int { return r.scanner.Column() }
