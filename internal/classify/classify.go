// Package classify holds small, stateless ASCII byte-classification
// predicates used by the sql Splitter. The csv Splitter does its own byte
// comparisons and does not import this package.
package classify

// IsSpace reports whether b is one of the ASCII whitespace bytes the SQL
// tokenizer's whitespace-skip branch treats as insignificant.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsIdentStart reports whether b may start a SQL identifier: A-Z, a-z, _, or
// any byte >= 0x80. Bytes above ASCII are treated as ordinary identifier
// bytes rather than classified by any Unicode rule, matching the reference
// SQLite dialect.
func IsIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= 0x80
}

// IsIdentContinue reports whether b may continue an identifier begun by a
// byte satisfying IsIdentStart: everything IsIdentStart allows, plus ASCII
// digits and '$'.
func IsIdentContinue(b byte) bool {
	return IsIdentStart(b) || IsDigit(b) || b == '$'
}

// IsASCII reports whether every byte of b is below 0x80.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// UpperASCII writes the ASCII upper-case form of src into dst, which must be
// at least len(src) bytes. It is used to fold a keyword candidate into a
// fixed-size scratch buffer ahead of a keyword-table lookup, avoiding a
// per-token allocation.
func UpperASCII(dst, src []byte) {
	for i, b := range src {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		dst[i] = b
	}
}
