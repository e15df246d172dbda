package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLineAtReturnsContainingLine(t *testing.T) {
	lines := []string{
		"alala lala long long le long long long!",
		"this is supposed to be the second line",
		"and this would be the third line in the document",
		"only to be followed by a trailing and final line!",
	}
	txt := New(lines[0] + "\n" + lines[1] + "\n" + lines[2] + "\n" + lines[3])

	padding := 0
	for _, want := range lines {
		// Every position from the first character through the terminator.
		for i := 0; i <= Count(want); i++ {
			p, err := txt.PositionAt(padding + i)
			require.NoError(t, err)

			line, err := LineAt(txt, p)
			require.NoError(t, err)
			assert.Equal(t, want, line.Text.String())

			got, err := txt.Slice(line.Span)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, padding, line.Span.Start.Index())
		}
		padding += Count(want) + 1
	}
}

func TestLineAtTerminators(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		cursor int
		want   string
	}{
		{name: "empty text", in: "", cursor: 0, want: ""},
		{name: "no terminator", in: "abc", cursor: 3, want: "abc"},
		{name: "lf before", in: "one\ntwo", cursor: 4, want: "two"},
		{name: "on lf", in: "one\ntwo", cursor: 3, want: "one"},
		{name: "crlf", in: "one\r\ntwo", cursor: 4, want: "two"},
		{name: "on crlf", in: "one\r\ntwo", cursor: 3, want: "one"},
		{name: "cr", in: "one\rtwo", cursor: 5, want: "two"},
		{name: "line separator", in: "one\u2028two", cursor: 4, want: "two"},
		{name: "paragraph separator", in: "one\u2029two", cursor: 2, want: "one"},
		{name: "next line", in: "one\u0085two", cursor: 7, want: "two"},
		{name: "blank middle line", in: "one\n\ntwo", cursor: 4, want: ""},
		{name: "trailing terminator", in: "one\n", cursor: 4, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := New(tt.in)
			p, err := txt.PositionAt(tt.cursor)
			require.NoError(t, err)

			line, err := LineAt(txt, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, line.Text.String())
			assert.Equal(t, Count(tt.want), line.Span.Len())
		})
	}
}

func TestLineAtForeignPosition(t *testing.T) {
	_, err := LineAt(New("a"), New("a").Start())
	assert.ErrorIs(t, err, ErrForeignPosition)
}

func TestToRelative(t *testing.T) {
	txt := New("first\nse🇮🇳cond\nthird")
	p, err := txt.PositionAt(Count("first\nse🇮🇳"))
	require.NoError(t, err)

	line, err := LineAt(txt, p)
	require.NoError(t, err)

	rel, ok := ToRelative(p, line)
	require.True(t, ok)
	assert.True(t, rel.In(line.Text))
	assert.Equal(t, 3, rel.Index())

	abs, err := ToAbsolute(rel, line)
	require.NoError(t, err)
	assert.Equal(t, p, abs)
}

func TestToRelativeOutsideLine(t *testing.T) {
	txt := New("first\nsecond")
	p, err := txt.PositionAt(8)
	require.NoError(t, err)
	line, err := LineAt(txt, p)
	require.NoError(t, err)

	_, ok := ToRelative(txt.Start(), line)
	assert.False(t, ok)

	_, ok = ToRelative(New("first\nsecond").End(), line)
	assert.False(t, ok)
}

func TestToRelativeInsideCluster(t *testing.T) {
	// Byte offset between "e" and its combining accent.
	txt := New("[e\u0301")
	p, err := txt.PositionFromOffset(2)
	require.NoError(t, err)

	line, err := LineAt(txt, p)
	require.NoError(t, err)

	_, ok := ToRelative(p, line)
	assert.False(t, ok)
}

func TestToAbsoluteForeignPosition(t *testing.T) {
	txt := New("abc")
	line, err := LineAt(txt, txt.Start())
	require.NoError(t, err)

	_, err = ToAbsolute(txt.End(), line)
	assert.ErrorIs(t, err, ErrForeignPosition)
}

func TestMapperRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		parts := rapid.SliceOf(
			rapid.SampledFrom([]string{"a", "b", " ", "[", "]", "\n", "\r\n", "🇮🇳", "e\u0301", "🌍", "\u2028"}),
		).Draw(rt, "parts")
		s := ""
		for _, part := range parts {
			s += part
		}
		txt := New(s)
		n := rapid.IntRange(0, txt.Count()).Draw(rt, "cursor")

		p, err := txt.PositionAt(n)
		if err != nil {
			rt.Fatalf("PositionAt(%d): %v", n, err)
		}
		line, err := LineAt(txt, p)
		if err != nil {
			rt.Fatalf("LineAt: %v", err)
		}
		rel, ok := ToRelative(p, line)
		if !ok {
			rt.Fatalf("position %d not mapped into line %q", n, line.Text.String())
		}
		abs, err := ToAbsolute(rel, line)
		if err != nil {
			rt.Fatalf("ToAbsolute: %v", err)
		}
		if abs != p {
			rt.Fatalf("round trip moved position: got offset %d, want %d", abs.Offset(), p.Offset())
		}
		if got := line.Span.Start.Index() + rel.Index(); got != n {
			rt.Fatalf("relative index %d from line start %d, want %d", rel.Index(), line.Span.Start.Index(), n)
		}
	})
}
