package csv_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-scantok/scantok/csv"
	"github.com/go-test/deep"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type field struct {
	text string
	eor  bool
	kind csv.FieldKind
}

func readAll(t *testing.T, r *csv.Reader) []field {
	t.Helper()
	var got []field
	for {
		text, eor, err := r.ReadField()
		if errors.Is(err, io.EOF) {
			return got
		}
		require.NoError(t, err)
		got = append(got, field{text: string(text), eor: eor, kind: r.Kind()})
	}
}

// Test_S1_Simple reads a three-field, single-record line.
func Test_S1_Simple(t *testing.T) {
	r := csv.NewReader(strings.NewReader("a,b,c\n"), csv.DefaultConfig())
	want := []field{
		{"a", false, csv.Unquoted},
		{"b", false, csv.Unquoted},
		{"c", true, csv.Unquoted},
	}
	got := readAll(t, r)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(field{})); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

// Test_S2_QuotedEmbeddedSepAndEscape reads quoted fields containing a separator and a doubled quote.
func Test_S2_QuotedEmbeddedSepAndEscape(t *testing.T) {
	in := `"x,y","she said ""hi"""` + "\n"
	r := csv.NewReader(strings.NewReader(in), csv.DefaultConfig())
	want := []field{
		{"x,y", false, csv.Quoted},
		{`she said "hi"`, true, csv.QuotedEscaped},
	}
	got := readAll(t, r)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(field{})); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

// Test_S3_CRLF reads two records terminated by CRLF.
func Test_S3_CRLF(t *testing.T) {
	r := csv.NewReader(strings.NewReader("a,b\r\nc,d\r\n"), csv.DefaultConfig())
	want := []field{
		{"a", false, csv.Unquoted},
		{"b", true, csv.Unquoted},
		{"c", false, csv.Unquoted},
		{"d", true, csv.Unquoted},
	}
	got := readAll(t, r)
	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("fields mismatch: %v", diff)
	}
}

// Test_S4_Unterminated reads a quoted field with no closing quote before EOF.
func Test_S4_Unterminated(t *testing.T) {
	r := csv.NewReader(strings.NewReader(`"abc`), csv.DefaultConfig())
	_, _, err := r.ReadField()
	var target *csv.UnterminatedQuotedFieldError
	require.ErrorAs(t, err, &target)
}

func Test_EmptyInput(t *testing.T) {
	r := csv.NewReader(strings.NewReader(""), csv.DefaultConfig())
	_, _, err := r.ReadField()
	assert.ErrorIs(t, err, io.EOF)
}

func Test_TrailingNewlineIsNotAnExtraEmptyRecord(t *testing.T) {
	r := csv.NewReader(strings.NewReader("a\n"), csv.DefaultConfig())
	got := readAll(t, r)
	assert.Equal(t, []field{{"a", true, csv.Unquoted}}, got)
}

func Test_NoTrailingNewline(t *testing.T) {
	r := csv.NewReader(strings.NewReader("a,b"), csv.DefaultConfig())
	got := readAll(t, r)
	assert.Equal(t, []field{
		{"a", false, csv.Unquoted},
		{"b", true, csv.Unquoted},
	}, got)
}

func Test_Trim(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Trim = true
	r := csv.NewReader(strings.NewReader("  a  , b ,c\n"), cfg)
	got := readAll(t, r)
	assert.Equal(t, []field{
		{"a", false, csv.Unquoted},
		{"b", false, csv.Unquoted},
		{"c", true, csv.Unquoted},
	}, got)
}

func Test_Trim_DoesNotAffectQuotedFields(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Trim = true
	r := csv.NewReader(strings.NewReader(`" a ",b`+"\n"), cfg)
	got := readAll(t, r)
	assert.Equal(t, " a ", got[0].text)
}

func Test_CustomSeparator(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Sep = '\t'
	r := csv.NewReader(strings.NewReader("a\tb\tc\n"), cfg)
	got := readAll(t, r)
	assert.Equal(t, []field{
		{"a", false, csv.Unquoted},
		{"b", false, csv.Unquoted},
		{"c", true, csv.Unquoted},
	}, got)
}

func Test_Comment(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Comment = '#'
	r := csv.NewReader(strings.NewReader("a,b\n# a comment line\nc,d\n"), cfg)
	got := readAll(t, r)
	want := []field{
		{"a", false, csv.Unquoted},
		{"b", true, csv.Unquoted},
		{"", true, csv.Unquoted},
		{"c", false, csv.Unquoted},
		{"d", true, csv.Unquoted},
	}
	assert.Equal(t, want, got)
}

func Test_Comment_AtEOFWithNoTrailingNewline(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Comment = '#'
	r := csv.NewReader(strings.NewReader("# trailing comment, no newline"), cfg)
	got := readAll(t, r)
	assert.Equal(t, []field{{"", true, csv.Unquoted}}, got)
}

func Test_UnescapedQuote_ErrorsWithoutLazy(t *testing.T) {
	r := csv.NewReader(strings.NewReader(`"a"b,c`+"\n"), csv.DefaultConfig())
	_, _, err := r.ReadField()
	var target *csv.UnescapedQuoteError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, byte('b'), target.Byte)
}

func Test_UnescapedQuote_AcceptedWithLazy(t *testing.T) {
	cfg := csv.DefaultConfig()
	cfg.Lazy = true
	r := csv.NewReader(strings.NewReader(`"a"b",c`+"\n"), cfg)
	text, eor, err := r.ReadField()
	require.NoError(t, err)
	assert.False(t, eor)
	assert.Equal(t, `a"b`, string(text))
}

func Test_OneByteQuotedFieldBeforeCRLF(t *testing.T) {
	// A 1-byte quoted field immediately preceding \r\n must yield empty
	// content, not drop or duplicate a byte.
	r := csv.NewReader(strings.NewReader(`""`+"\r\n"), csv.DefaultConfig())
	text, eor, err := r.ReadField()
	require.NoError(t, err)
	assert.True(t, eor)
	assert.Equal(t, "", string(text))
}

func Test_StreamingAcrossSmallReads(t *testing.T) {
	in := `"x,y","she said ""hi"""` + "\na,b,c\n"
	rdr := &byteAtATimeReader{data: []byte(in)}
	r := csv.NewReader(rdr, csv.DefaultConfig())
	got := readAll(t, r)
	want := []field{
		{"x,y", false, csv.Quoted},
		{`she said "hi"`, true, csv.QuotedEscaped},
		{"a", false, csv.Unquoted},
		{"b", false, csv.Unquoted},
		{"c", true, csv.Unquoted},
	}
	assert.Equal(t, want, got)
}

type byteAtATimeReader struct {
	data []byte
	pos  int
}

func (r *byteAtATimeReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}
