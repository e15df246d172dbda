package interlink

import (
	"fmt"

	"github.com/aidanlsb/interlink/text"
)

// Match is an interlink keyword found in a text.
type Match struct {
	// Span locates the keyword in the queried text, excluding the opening marker.
	Span text.Span

	// Keyword is the text typed after the opening marker, up to the cursor.
	Keyword string
}

// Start returns the character index where the keyword starts. It counts
// from the start of the text, so it costs O(position); per-keystroke callers
// should work with Span instead.
func (m Match) Start() int {
	return m.Span.Start.Index()
}

// End returns the character index just past the keyword. Like Start it is
// O(position).
func (m Match) End() int {
	return m.Span.End.Index()
}

// Keyword returns the interlink keyword being typed at p, if any.
//
// Only the line holding p is examined. The text between p and the end of the
// line must not close a bracket opened elsewhere, and the text between the
// start of the line and p must end in an opening marker followed by at least
// one character and no closing marker.
//
// ok is false whenever there is nothing to complete. err is non-nil only for
// invalid input: markers that fail Validate or a position from another text.
func Keyword(t *text.Text, p text.Position, m Markers) (match Match, ok bool, err error) {
	if err := m.Validate(); err != nil {
		return Match{}, false, err
	}
	if !p.In(t) {
		return Match{}, false, text.ErrForeignPosition
	}

	line, err := text.LineAt(t, p)
	if err != nil {
		return Match{}, false, err
	}
	if line.Text.IsEmpty() {
		return Match{}, false, nil
	}

	rel, ok := text.ToRelative(p, line)
	if !ok {
		return Match{}, false, nil
	}

	lhs, rhs, err := text.Split(line.Text, rel)
	if err != nil {
		return Match{}, false, err
	}
	if HasUnbalancedClosing(rhs, m) {
		return Match{}, false, nil
	}

	start, keyword, ok := TrailingKeyword(lhs, m)
	if !ok {
		return Match{}, false, nil
	}

	relStart, err := line.Text.PositionAt(start)
	if err != nil {
		return Match{}, false, fmt.Errorf("locate keyword in line: %w", err)
	}
	absStart, err := text.ToAbsolute(relStart, line)
	if err != nil {
		return Match{}, false, err
	}
	span, err := t.SpanFrom(absStart, text.Count(keyword))
	if err != nil {
		return Match{}, false, fmt.Errorf("locate keyword in text: %w", err)
	}

	return Match{Span: span, Keyword: keyword}, true, nil
}

// KeywordAt is Keyword for a cursor given as a character index into s.
// It returns text.ErrPositionOutOfRange when cursor is outside [0, length].
func KeywordAt(s string, cursor int, m Markers) (Match, bool, error) {
	t := text.New(s)
	p, err := t.PositionAt(cursor)
	if err != nil {
		return Match{}, false, err
	}
	return Keyword(t, p, m)
}
