package sql

import (
	"fmt"

	scantok "github.com/go-scantok/scantok"
)

// UnrecognizedTokenError is raised when the first byte of the live window
// cannot begin any recognized token.
type UnrecognizedTokenError struct {
	Byte byte
	pos  scantok.Position
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("sql: unrecognized token starting with %q at %s", e.Byte, e.pos)
}
func (e *UnrecognizedTokenError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnrecognizedTokenError) Pos() scantok.Position          { return e.pos }

// UnterminatedLiteralError is raised when EOF is reached before a `, ', or "
// quoted literal is closed.
type UnterminatedLiteralError struct {
	Quote byte
	pos   scantok.Position
}

func (e *UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("sql: unterminated %q-quoted literal at %s", e.Quote, e.pos)
}
func (e *UnterminatedLiteralError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnterminatedLiteralError) Pos() scantok.Position          { return e.pos }

// UnterminatedBracketError is raised when EOF is reached before a closing
// ']' for a bracketed identifier.
type UnterminatedBracketError struct {
	pos scantok.Position
}

func (e *UnterminatedBracketError) Error() string {
	return fmt.Sprintf("sql: unterminated bracketed identifier at %s", e.pos)
}
func (e *UnterminatedBracketError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnterminatedBracketError) Pos() scantok.Position          { return e.pos }

// UnterminatedBlockCommentError is raised when EOF is reached before a
// closing "*/" for a /* ... */ comment.
type UnterminatedBlockCommentError struct {
	pos scantok.Position
}

func (e *UnterminatedBlockCommentError) Error() string {
	return fmt.Sprintf("sql: unterminated block comment at %s", e.pos)
}
func (e *UnterminatedBlockCommentError) SetPosition(p scantok.Position) { e.pos = p }
func (e *UnterminatedBlockCommentError) Pos() scantok.Position          { return e.pos }

// BadVariableNameError is raised when a named-variable sigil ($, @, #, :) is
// not followed by at least one identifier-continue byte.
type BadVariableNameError struct {
	Sigil byte
	pos   scantok.Position
}

func (e *BadVariableNameError) Error() string {
	return fmt.Sprintf("sql: %q must be followed by a name at %s", e.Sigil, e.pos)
}
func (e *BadVariableNameError) SetPosition(p scantok.Position) { e.pos = p }
func (e *BadVariableNameError) Pos() scantok.Position          { return e.pos }

// BadNumberError is raised when a numeric literal is malformed: an
// identifier-start byte immediately follows a decimal run, or an exponent
// marker is not followed by at least one digit.
type BadNumberError struct {
	pos scantok.Position
}

func (e *BadNumberError) Error() string {
	return fmt.Sprintf("sql: malformed number at %s", e.pos)
}
func (e *BadNumberError) SetPosition(p scantok.Position) { e.pos = p }
func (e *BadNumberError) Pos() scantok.Position          { return e.pos }

// ExpectedEqualsSignError is raised when '!' is not followed by '='.
type ExpectedEqualsSignError struct {
	pos scantok.Position
}

func (e *ExpectedEqualsSignError) Error() string {
	return fmt.Sprintf("sql: expected '=' after '!' at %s", e.pos)
}
func (e *ExpectedEqualsSignError) SetPosition(p scantok.Position) { e.pos = p }
func (e *ExpectedEqualsSignError) Pos() scantok.Position          { return e.pos }

// MalformedBlobLiteralError is raised when an x'...'/X'...' blob literal's
// hex digit count is zero or odd, or it is unterminated.
type MalformedBlobLiteralError struct {
	pos scantok.Position
}

func (e *MalformedBlobLiteralError) Error() string {
	return fmt.Sprintf("sql: malformed blob literal at %s", e.pos)
}
func (e *MalformedBlobLiteralError) SetPosition(p scantok.Position) { e.pos = p }
func (e *MalformedBlobLiteralError) Pos() scantok.Position          { return e.pos }

// MalformedHexIntegerError is raised when a 0x/0X prefix has no hex digits,
// or an identifier-start byte immediately follows the hex digit run.
type MalformedHexIntegerError struct {
	pos scantok.Position
}

func (e *MalformedHexIntegerError) Error() string {
	return fmt.Sprintf("sql: malformed hex integer at %s", e.pos)
}
func (e *MalformedHexIntegerError) SetPosition(p scantok.Position) { e.pos = p }
func (e *MalformedHexIntegerError) Pos() scantok.Position          { return e.pos }
