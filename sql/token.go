// Package sql implements a Scanner Splitter that tokenizes SQL text
// following the SQLite dialect: multi-character operators, the full SQLite
// reserved-keyword list, numeric literals (integer, float, hex), string and
// identifier literals with doubled-quote escaping, blob literals, bracketed
// identifiers, parameter/variable names, and line/block comments.
package sql

// Kind classifies a single SQL token.
type Kind int

const (
	// Id is an identifier that is not a recognized keyword, including a
	// bracketed identifier's stripped content.
	Id Kind = iota
	// StringLiteral is a '...'-quoted string, un-escaped in place if needed.
	StringLiteral
	// Integer is a decimal or 0x-prefixed hexadecimal integer literal.
	Integer
	// Float is a numeric literal with a fractional and/or exponent part.
	Float
	// Variable is a positional (?N) or named ($x, @x, #x, :x) parameter.
	Variable
	// Blob is an x'...'/X'...' hex blob literal.
	Blob

	// Punctuation and operators.
	LParen
	RParen
	Semi
	Plus
	Minus
	Star
	Slash
	Percent
	Comma
	Ampersand
	Tilde
	Dot
	Equals
	NotEquals
	LessThan
	LessEquals
	LeftShift
	GreaterThan
	GreaterEquals
	RightShift
	Concat
	BitOr

	// Keywords, in SQLite's reserved-word list. TEMP and TEMPORARY both
	// lex to Temp; every other keyword has its own Kind (see keywords.go).
	Abort
	Action
	Add
	After
	All
	Alter
	Always
	Analyze
	And
	As
	Asc
	Attach
	Autoincrement
	Before
	Begin
	Between
	By
	Cascade
	Case
	Cast
	Check
	Collate
	Column
	Commit
	Conflict
	Constraint
	Create
	Cross
	Current
	CurrentDate
	CurrentTime
	CurrentTimestamp
	Database
	Default
	Deferrable
	Deferred
	Delete
	Desc
	Detach
	Distinct
	Do
	Drop
	Each
	Else
	End
	Escape
	Except
	Exclude
	Exclusive
	Exists
	Explain
	Fail
	Filter
	First
	Following
	For
	Foreign
	From
	Full
	Generated
	Glob
	Group
	Groups
	Having
	If
	Ignore
	Immediate
	In
	Index
	Indexed
	Initially
	Inner
	Insert
	Instead
	Intersect
	Into
	Is
	Isnull
	Join
	Key
	Last
	Left
	Like
	Limit
	Match
	Materialized
	Natural
	No
	Not
	Nothing
	Notnull
	Null
	Nulls
	Of
	Offset
	On
	Or
	Order
	Others
	Outer
	Over
	Partition
	Plan
	Pragma
	Preceding
	Primary
	Query
	Raise
	Range
	Recursive
	References
	Regexp
	Reindex
	Release
	Rename
	Replace
	Restrict
	Returning
	Right
	Rollback
	Row
	Rows
	Savepoint
	Select
	Set
	Table
	Temp
	Then
	Ties
	To
	Transaction
	Trigger
	Unbounded
	Union
	Unique
	Update
	Using
	Vacuum
	Values
	View
	Virtual
	When
	Where
	Window
	With
	Without
)

// String implements fmt.Stringer by consulting the same table keyword
// lookup is built from, plus the fixed names for literal/punctuation kinds.
func (k Kind) String() string {
	if name, ok := fixedKindNames[k]; ok {
		return name
	}
	if name, ok := kindName[k]; ok {
		return name
	}
	return "Kind(?)"
}

var fixedKindNames = map[Kind]string{
	Id:            "Id",
	StringLiteral: "StringLiteral",
	Integer:       "Integer",
	Float:         "Float",
	Variable:      "Variable",
	Blob:          "Blob",
	LParen:        "LParen",
	RParen:        "RParen",
	Semi:          "Semi",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Comma:         "Comma",
	Ampersand:     "Ampersand",
	Tilde:         "Tilde",
	Dot:           "Dot",
	Equals:        "Equals",
	NotEquals:     "NotEquals",
	LessThan:      "LessThan",
	LessEquals:    "LessEquals",
	LeftShift:     "LeftShift",
	GreaterThan:   "GreaterThan",
	GreaterEquals: "GreaterEquals",
	RightShift:    "RightShift",
	Concat:        "Concat",
	BitOr:         "BitOr",
}

// Token is a single tokenized unit: its Kind plus the exact bytes (after any
// in-place un-escaping) the Splitter claimed for it.
type Token struct {
	Kind Kind
	Text []byte
}
