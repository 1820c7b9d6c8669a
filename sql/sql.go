package sql

import (
	"bytes"

	scantok "github.com/go-scantok/scantok"
	"github.com/go-scantok/scantok/internal/classify"
)

// Splitter tokenizes SQL text. Correct tokenization requires no state across
// calls; Splitter keeps a small reusable scratch buffer only to case-fold a
// keyword candidate ahead of a table lookup without allocating per token.
type Splitter struct {
	scratch [MaxKeywordLen]byte
}

// NewSplitter returns a ready-to-use SQL Splitter.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split implements scantok.Splitter, dispatching on the first byte of data
// per the SQLite-dialect token grammar.
func (s *Splitter) Split(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) == 0 {
		return scantok.NeedMore, nil, nil, 0, nil
	}

	c := data[0]
	switch {
	case classify.IsSpace(c):
		return s.splitWhitespace(data, eof)
	case c == '-':
		return s.splitMinusOrComment(data, eof)
	case c == '(':
		return tok1(LParen, data)
	case c == ')':
		return tok1(RParen, data)
	case c == ';':
		return tok1(Semi, data)
	case c == '+':
		return tok1(Plus, data)
	case c == '*':
		return tok1(Star, data)
	case c == '%':
		return tok1(Percent, data)
	case c == ',':
		return tok1(Comma, data)
	case c == '&':
		return tok1(Ampersand, data)
	case c == '~':
		return tok1(Tilde, data)
	case c == '/':
		return s.splitSlashOrComment(data, eof)
	case c == '=':
		return s.splitEquals(data, eof)
	case c == '<':
		return s.splitLess(data, eof)
	case c == '>':
		return s.splitGreater(data, eof)
	case c == '!':
		return s.splitBang(data, eof)
	case c == '|':
		return s.splitPipe(data, eof)
	case c == '`' || c == '\'' || c == '"':
		return s.splitQuotedLiteral(data, eof)
	case c == '.':
		return s.splitDotOrNumber(data, eof)
	case classify.IsDigit(c):
		return s.splitNumber(data, eof)
	case c == '[':
		return s.splitBracket(data, eof)
	case c == '?':
		return s.splitPositionalVariable(data, eof)
	case c == '$' || c == '@' || c == '#' || c == ':':
		return s.splitNamedVariable(data, eof)
	case c == 'x' || c == 'X':
		if len(data) < 2 {
			if eof {
				return s.splitIdentOrKeyword(data, eof)
			}
			return scantok.NeedMore, nil, nil, 0, nil
		}
		if data[1] == '\'' {
			return s.splitBlob(data, eof)
		}
		return s.splitIdentOrKeyword(data, eof)
	case classify.IsIdentStart(c):
		return s.splitIdentOrKeyword(data, eof)
	default:
		return scantok.ErrorFound, nil, nil, 0, &UnrecognizedTokenError{Byte: c}
	}
}

func tok1(k Kind, data []byte) (scantok.Outcome, []byte, any, int, error) {
	return scantok.TokenFound, data[:1], k, 1, nil
}

func (s *Splitter) splitWhitespace(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := 0
	for i < len(data) && classify.IsSpace(data[i]) {
		i++
	}
	if i == len(data) && !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	return scantok.Skip, nil, nil, i, nil
}

func (s *Splitter) splitMinusOrComment(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(Minus, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if data[1] != '-' {
		return tok1(Minus, data)
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return scantok.Skip, nil, nil, i + 1, nil
	}
	if eof {
		return scantok.Skip, nil, nil, len(data), nil
	}
	return scantok.NeedMore, nil, nil, 0, nil
}

func (s *Splitter) splitSlashOrComment(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(Slash, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if data[1] != '*' {
		return tok1(Slash, data)
	}
	if i := bytes.Index(data[2:], []byte("*/")); i >= 0 {
		return scantok.Skip, nil, nil, i + 4, nil
	}
	if eof {
		return scantok.ErrorFound, nil, nil, 0, &UnterminatedBlockCommentError{}
	}
	return scantok.NeedMore, nil, nil, 0, nil
}

func (s *Splitter) splitEquals(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) >= 2 && data[1] == '=' {
		return scantok.TokenFound, data[:2], Equals, 2, nil
	}
	if len(data) < 2 && !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	return tok1(Equals, data)
}

func (s *Splitter) splitLess(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(LessThan, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	switch data[1] {
	case '=':
		return scantok.TokenFound, data[:2], LessEquals, 2, nil
	case '>':
		return scantok.TokenFound, data[:2], NotEquals, 2, nil
	case '<':
		return scantok.TokenFound, data[:2], LeftShift, 2, nil
	default:
		return tok1(LessThan, data)
	}
}

func (s *Splitter) splitGreater(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(GreaterThan, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	switch data[1] {
	case '=':
		return scantok.TokenFound, data[:2], GreaterEquals, 2, nil
	case '>':
		return scantok.TokenFound, data[:2], RightShift, 2, nil
	default:
		return tok1(GreaterThan, data)
	}
}

func (s *Splitter) splitBang(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return scantok.ErrorFound, nil, nil, 0, &ExpectedEqualsSignError{}
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if data[1] != '=' {
		return scantok.ErrorFound, nil, nil, 0, &ExpectedEqualsSignError{}
	}
	return scantok.TokenFound, data[:2], NotEquals, 2, nil
}

func (s *Splitter) splitPipe(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(BitOr, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if data[1] == '|' {
		return scantok.TokenFound, data[:2], Concat, 2, nil
	}
	return tok1(BitOr, data)
}

// splitQuotedLiteral handles `...`, '...', and "..." literals, all of which
// share the same doubled-quote escaping rule. Only '...' classifies as
// StringLiteral; the other two classify as Id (quoted identifiers).
func (s *Splitter) splitQuotedLiteral(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	quote := data[0]
	kind := Id
	if quote == '\'' {
		kind = StringLiteral
	}
	escaped := 0
	i := 1
	for i < len(data) {
		if data[i] != quote {
			i++
			continue
		}
		if i+1 >= len(data) {
			if !eof {
				return scantok.NeedMore, nil, nil, 0, nil
			}
		} else if data[i+1] == quote {
			escaped++
			i += 2
			continue
		}
		content := unescapeQuote(data[1:i], quote, escaped)
		return scantok.TokenFound, content, kind, i + 1, nil
	}
	if eof {
		return scantok.ErrorFound, nil, nil, 0, &UnterminatedLiteralError{Quote: quote}
	}
	return scantok.NeedMore, nil, nil, 0, nil
}

// unescapeQuote rewrites b in place, collapsing each doubled quote into a
// single one: a two-index read/write walk that, on reading the quote
// character, skips the byte immediately after it (the doubled partner).
func unescapeQuote(b []byte, quote byte, escaped int) []byte {
	if escaped == 0 {
		return b
	}
	w := 0
	for r := 0; r < len(b); r++ {
		c := b[r]
		b[w] = c
		w++
		if c == quote {
			r++
		}
	}
	return b[:w]
}

func (s *Splitter) splitDotOrNumber(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if len(data) < 2 {
		if eof {
			return tok1(Dot, data)
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if classify.IsDigit(data[1]) {
		return s.splitFractional(data, 0, eof)
	}
	return tok1(Dot, data)
}

func (s *Splitter) splitNumber(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if data[0] == '0' {
		if len(data) < 2 {
			if eof {
				return scantok.TokenFound, data[:1], Integer, 1, nil
			}
			return scantok.NeedMore, nil, nil, 0, nil
		}
		if data[1] == 'x' || data[1] == 'X' {
			return s.splitHex(data, eof)
		}
	}
	i := 0
	for i < len(data) && classify.IsDigit(data[i]) {
		i++
	}
	if i == len(data) {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		return scantok.TokenFound, data[:i], Integer, i, nil
	}
	switch data[i] {
	case '.':
		return s.splitFractional(data, i, eof)
	case 'e', 'E':
		return s.splitExponent(data, i, eof)
	default:
		if classify.IsIdentStart(data[i]) {
			return scantok.ErrorFound, nil, nil, 0, &BadNumberError{}
		}
		return scantok.TokenFound, data[:i], Integer, i, nil
	}
}

func (s *Splitter) splitHex(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := 2
	for i < len(data) && classify.IsHexDigit(data[i]) {
		i++
	}
	if i == len(data) {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		if i == 2 {
			return scantok.ErrorFound, nil, nil, 0, &MalformedHexIntegerError{}
		}
		return scantok.TokenFound, data[:i], Integer, i, nil
	}
	if i == 2 || classify.IsIdentStart(data[i]) {
		return scantok.ErrorFound, nil, nil, 0, &MalformedHexIntegerError{}
	}
	return scantok.TokenFound, data[:i], Integer, i, nil
}

func (s *Splitter) splitFractional(data []byte, dot int, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := dot + 1
	for i < len(data) && classify.IsDigit(data[i]) {
		i++
	}
	if i == len(data) {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		return scantok.TokenFound, data[:i], Float, i, nil
	}
	if data[i] == 'e' || data[i] == 'E' {
		return s.splitExponent(data, i, eof)
	}
	if classify.IsIdentStart(data[i]) {
		return scantok.ErrorFound, nil, nil, 0, &BadNumberError{}
	}
	return scantok.TokenFound, data[:i], Float, i, nil
}

func (s *Splitter) splitExponent(data []byte, e int, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := e + 1
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	start := i
	for i < len(data) && classify.IsDigit(data[i]) {
		i++
	}
	if i == len(data) {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		if i == start {
			return scantok.ErrorFound, nil, nil, 0, &BadNumberError{}
		}
		return scantok.TokenFound, data[:i], Float, i, nil
	}
	if i == start {
		return scantok.ErrorFound, nil, nil, 0, &BadNumberError{}
	}
	if classify.IsIdentStart(data[i]) {
		return scantok.ErrorFound, nil, nil, 0, &BadNumberError{}
	}
	return scantok.TokenFound, data[:i], Float, i, nil
}

func (s *Splitter) splitBracket(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	if i := bytes.IndexByte(data[1:], ']'); i >= 0 {
		return scantok.TokenFound, data[1 : i+1], Id, i + 2, nil
	}
	if eof {
		return scantok.ErrorFound, nil, nil, 0, &UnterminatedBracketError{}
	}
	return scantok.NeedMore, nil, nil, 0, nil
}

// splitPositionalVariable handles "?" followed by zero or more digits. The
// emitted token is the digits alone; the sigil itself is never included.
func (s *Splitter) splitPositionalVariable(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := 1
	for i < len(data) && classify.IsDigit(data[i]) {
		i++
	}
	if i == len(data) && !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	return scantok.TokenFound, data[1:i], Variable, i, nil
}

func (s *Splitter) splitNamedVariable(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	sigil := data[0]
	if len(data) < 2 {
		if eof {
			return scantok.ErrorFound, nil, nil, 0, &BadVariableNameError{Sigil: sigil}
		}
		return scantok.NeedMore, nil, nil, 0, nil
	}
	if !classify.IsIdentContinue(data[1]) {
		return scantok.ErrorFound, nil, nil, 0, &BadVariableNameError{Sigil: sigil}
	}
	i := 1
	for i < len(data) && classify.IsIdentContinue(data[i]) {
		i++
	}
	if i == len(data) && !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	return scantok.TokenFound, data[:i], Variable, i, nil
}

func (s *Splitter) splitBlob(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := 2
	for i < len(data) && classify.IsHexDigit(data[i]) {
		i++
	}
	if i == len(data) {
		if !eof {
			return scantok.NeedMore, nil, nil, 0, nil
		}
		return scantok.ErrorFound, nil, nil, 0, &MalformedBlobLiteralError{}
	}
	if data[i] != '\'' {
		return scantok.ErrorFound, nil, nil, 0, &MalformedBlobLiteralError{}
	}
	digits := i - 2
	if digits == 0 || digits%2 != 0 {
		return scantok.ErrorFound, nil, nil, 0, &MalformedBlobLiteralError{}
	}
	return scantok.TokenFound, data[2:i], Blob, i + 1, nil
}

func (s *Splitter) splitIdentOrKeyword(data []byte, eof bool) (scantok.Outcome, []byte, any, int, error) {
	i := 0
	for i < len(data) && classify.IsIdentContinue(data[i]) {
		i++
	}
	if i == len(data) && !eof {
		return scantok.NeedMore, nil, nil, 0, nil
	}
	word := data[:i]
	if len(word) >= 2 && len(word) <= MaxKeywordLen && classify.IsASCII(word) {
		classify.UpperASCII(s.scratch[:len(word)], word)
		if kind, ok := lookupKeyword(s.scratch[:len(word)]); ok {
			return scantok.TokenFound, word, kind, i, nil
		}
	}
	return scantok.TokenFound, word, Id, i, nil
}
