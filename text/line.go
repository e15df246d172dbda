package text

import "unicode/utf8"

// Line is the span of one line in a text together with its content.
// Line terminators are not part of the line.
type Line struct {
	Span Span
	Text *Text
}

// LineAt returns the line containing p.
//
// A position on a terminator belongs to the line that the terminator ends;
// the position right after a terminator starts the next line. Only the runes
// between the neighbouring terminators are visited.
func LineAt(t *Text, p Position) (Line, error) {
	if p.text != t {
		return Line{}, ErrForeignPosition
	}

	start := p.off
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(t.s[:start])
		if isTerminator(r) {
			break
		}
		start -= size
	}

	end := p.off
	for end < len(t.s) {
		r, size := utf8.DecodeRuneInString(t.s[end:])
		if isTerminator(r) {
			break
		}
		end += size
	}

	return Line{
		Span: Span{
			Start: Position{text: t, off: start},
			End:   Position{text: t, off: end},
		},
		Text: New(t.s[start:end]),
	}, nil
}

// ToRelative re-expresses absolute position p as a position in line.Text.
// It reports false when p is not inside the line (boundaries included) or
// does not fall between two characters of the line.
func ToRelative(p Position, line Line) (Position, bool) {
	if line.Text == nil || p.text == nil || p.text != line.Span.Start.text {
		return Position{}, false
	}
	if p.off < line.Span.Start.off || p.off > line.Span.End.off {
		return Position{}, false
	}
	rel := p.off - line.Span.Start.off
	if !isBoundary(line.Text.s, rel) {
		return Position{}, false
	}
	return Position{text: line.Text, off: rel}, true
}

// ToAbsolute re-expresses rel, a position in line.Text, as a position in the
// text the line was taken from.
func ToAbsolute(rel Position, line Line) (Position, error) {
	if line.Text == nil || rel.text != line.Text {
		return Position{}, ErrForeignPosition
	}
	return Position{text: line.Span.Start.text, off: line.Span.Start.off + rel.off}, nil
}

// IsTerminator reports whether cluster is a line terminator.
func IsTerminator(cluster string) bool {
	switch cluster {
	case "\n", "\r", "\r\n", "\u0085", "\u2028", "\u2029":
		return true
	}
	return false
}

func isTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
