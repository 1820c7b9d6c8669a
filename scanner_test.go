package scantok_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	scantok "github.com/go-scantok/scantok"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLines(t *testing.T, r io.Reader) []string {
	t.Helper()
	s := scantok.New(r, scantok.Liner{})
	var out []string
	for {
		tok, err := s.Scan()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		out = append(out, string(tok.Bytes))
	}
	return out
}

func Test_Scanner_Liner(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single no newline", in: "abc", want: []string{"abc"}},
		{name: "unix lines", in: "a\nb\nc\n", want: []string{"a", "b", "c"}},
		{name: "crlf lines", in: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "trailing partial", in: "a\nb", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectLines(t, strings.NewReader(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Test_Scanner_Idempotent_EOF verifies invariant 6: after the first End,
// subsequent scans also return End.
func Test_Scanner_Idempotent_EOF(t *testing.T) {
	s := scantok.New(strings.NewReader("a\n"), scantok.Liner{})
	_, err := s.Scan()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := s.Scan()
		assert.ErrorIs(t, err, io.EOF)
	}
}

// Test_Scanner_Growth exercises the amortized shift/grow protocol by feeding
// a line far larger than the default initial capacity.
func Test_Scanner_Growth(t *testing.T) {
	big := strings.Repeat("x", scantok.DefaultBufSize*3) + "\n" + "y\n"
	s := scantok.New(strings.NewReader(big), scantok.Liner{})

	tok, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, scantok.DefaultBufSize*3, len(tok.Bytes))
	assert.Greater(t, s.Cap(), scantok.DefaultBufSize)

	tok, err = s.Scan()
	require.NoError(t, err)
	assert.Equal(t, "y", string(tok.Bytes))
}

// Test_Scanner_CursorMonotonic verifies invariant 1: (line, column) never
// decreases across a sequence of scans.
func Test_Scanner_CursorMonotonic(t *testing.T) {
	s := scantok.New(strings.NewReader("aa\nbb\ncc\n"), scantok.Liner{})
	prevLine, prevCol := int64(0), 0
	for {
		_, err := s.Scan()
		line, col := s.Line(), s.Column()
		assert.True(t, line > prevLine || (line == prevLine && col >= prevCol))
		prevLine, prevCol = line, col
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

type onceErrReader struct {
	data []byte
	err  error
	read bool
}

func (r *onceErrReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, r.err
	}
	r.read = true
	n := copy(p, r.data)
	return n, nil
}

func Test_Scanner_IOError(t *testing.T) {
	wantErr := errors.New("boom")
	r := &onceErrReader{data: []byte("partial"), err: wantErr}
	s := scantok.New(r, scantok.Liner{})

	_, err := s.Scan()
	require.Error(t, err)
	var ioErr *scantok.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.ErrorIs(t, err, wantErr)
}

func Test_Scanner_Reset(t *testing.T) {
	s := scantok.New(strings.NewReader("a\n"), scantok.Liner{})
	_, err := s.Scan()
	require.NoError(t, err)
	_, err = s.Scan()
	require.ErrorIs(t, err, io.EOF)

	s.Reset(strings.NewReader("b\nc\n"))
	var got []string
	for {
		tok, err := s.Scan()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, string(tok.Bytes))
	}
	assert.Equal(t, []string{"b", "c"}, got)
}

func Test_Scanner_ReadImplementsIOReader(t *testing.T) {
	s := scantok.New(strings.NewReader("hello world"), scantok.Liner{})
	var buf bytes.Buffer
	n, err := io.Copy(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, int64(len("hello world")), n)
	assert.Equal(t, "hello world", buf.String())
}
