package text

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

var (
	// ErrPositionOutOfRange is returned when a position lies outside [0, length].
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrForeignPosition is returned when a position is used with a Text it does not belong to.
	ErrForeignPosition = errors.New("position belongs to a different text")

	// ErrNotBoundary is returned when a byte offset splits an encoded character.
	ErrNotBoundary = errors.New("offset is not on a character boundary")
)

// Text is an immutable string addressed in grapheme clusters.
type Text struct {
	s string
}

// New wraps s. It does not copy or segment the string.
func New(s string) *Text {
	return &Text{s: s}
}

// String returns the underlying string.
func (t *Text) String() string {
	return t.s
}

// IsEmpty reports whether the text has no characters.
func (t *Text) IsEmpty() bool {
	return t.s == ""
}

// Count returns the number of grapheme clusters in the text.
func (t *Text) Count() int {
	return Count(t.s)
}

// Start returns the position before the first character.
func (t *Text) Start() Position {
	return Position{text: t, off: 0}
}

// End returns the position after the last character.
func (t *Text) End() Position {
	return Position{text: t, off: len(t.s)}
}

// PositionAt returns the position n characters from the start.
// Valid values of n are 0 through Count() inclusive.
func (t *Text) PositionAt(n int) (Position, error) {
	if n < 0 {
		return Position{}, fmt.Errorf("%w: %d", ErrPositionOutOfRange, n)
	}
	off, ok := advance(t.s, 0, n)
	if !ok {
		return Position{}, fmt.Errorf("%w: %d (length %d)", ErrPositionOutOfRange, n, t.Count())
	}
	return Position{text: t, off: off}, nil
}

// PositionFromOffset returns the position at byte offset off.
//
// Only the range and UTF-8 alignment are checked here. An offset that lands
// inside a multi-rune cluster is accepted, and is rejected later by
// ToRelative when it is mapped into its line.
func (t *Text) PositionFromOffset(off int) (Position, error) {
	if off < 0 || off > len(t.s) {
		return Position{}, fmt.Errorf("%w: byte offset %d (length %d)", ErrPositionOutOfRange, off, len(t.s))
	}
	if off < len(t.s) && !utf8.RuneStart(t.s[off]) {
		return Position{}, fmt.Errorf("%w: byte offset %d", ErrNotBoundary, off)
	}
	return Position{text: t, off: off}, nil
}

// Slice returns the characters covered by sp.
func (t *Text) Slice(sp Span) (string, error) {
	if sp.Start.text != t || sp.End.text != t {
		return "", ErrForeignPosition
	}
	if sp.End.off < sp.Start.off {
		return "", fmt.Errorf("invalid span: end (%d) < start (%d)", sp.End.off, sp.Start.off)
	}
	return t.s[sp.Start.off:sp.End.off], nil
}

// SpanFrom returns the span of n characters starting at p.
func (t *Text) SpanFrom(p Position, n int) (Span, error) {
	if p.text != t {
		return Span{}, ErrForeignPosition
	}
	if n < 0 {
		return Span{}, fmt.Errorf("%w: length %d", ErrPositionOutOfRange, n)
	}
	end, ok := advance(t.s, p.off, n)
	if !ok {
		return Span{}, fmt.Errorf("%w: %d characters past byte offset %d", ErrPositionOutOfRange, n, p.off)
	}
	return Span{Start: p, End: Position{text: t, off: end}}, nil
}

// Split cuts t at p. The left side holds the characters before p and the
// right side the characters at and after it.
func Split(t *Text, p Position) (lhs, rhs string, err error) {
	if p.text != t {
		return "", "", ErrForeignPosition
	}
	return t.s[:p.off], t.s[p.off:], nil
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// advance steps n clusters forward from byte offset off.
// It reports false when s ends first.
func advance(s string, off, n int) (int, bool) {
	rest := s[off:]
	state := -1
	for i := 0; i < n; i++ {
		if rest == "" {
			return 0, false
		}
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		off += len(cluster)
	}
	return off, true
}

// isBoundary reports whether byte offset off falls between two clusters of s.
func isBoundary(s string, off int) bool {
	if off == 0 || off == len(s) {
		return true
	}
	pos := 0
	rest := s
	state := -1
	for rest != "" && pos < off {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
	}
	return pos == off
}
