package csv

import (
	"fmt"

	scantok "github.com/go-scantok/scantok"
)

// UnescapedQuoteError is raised when a `"` inside a quoted field is followed
// by something other than the separator, `\n`, or `\r\n` (a `\r` that ends
// the input also closes the field), and Config.Lazy is false.
type UnescapedQuoteError struct {
	Byte byte
	pos  scantok.Position
}

func (e *UnescapedQuoteError) Error() string {
	return fmt.Sprintf("csv: unescaped quote followed by %q at %s", e.Byte, e.pos)
}
func (e *UnescapedQuoteError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnescapedQuoteError) Pos() scantok.Position          { return e.pos }

// UnterminatedQuotedFieldError is raised when EOF is reached inside a quoted
// field with no closing quote found.
type UnterminatedQuotedFieldError struct {
	pos scantok.Position
}

func (e *UnterminatedQuotedFieldError) Error() string {
	return fmt.Sprintf("csv: unterminated quoted field at %s", e.pos)
}
func (e *UnterminatedQuotedFieldError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnterminatedQuotedFieldError) Pos() scantok.Position          { return e.pos }
