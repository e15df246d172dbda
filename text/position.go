package text

// Position is a cursor location in a specific Text, between two characters.
// The zero Position belongs to no text.
type Position struct {
	text *Text
	off  int
}

// IsValid reports whether p was obtained from a Text.
func (p Position) IsValid() bool {
	return p.text != nil
}

// Offset returns the byte offset of p in its text.
func (p Position) Offset() int {
	return p.off
}

// Index returns the number of characters before p. It segments everything
// before p, so it is O(offset) rather than bounded by the line.
func (p Position) Index() int {
	if p.text == nil {
		return 0
	}
	return Count(p.text.s[:p.off])
}

// In reports whether p belongs to t.
func (p Position) In(t *Text) bool {
	return p.text == t
}

// Span is a half-open range [Start, End) of positions in one Text.
type Span struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.Start.off == s.End.off
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	if s.Start.text == nil || s.End.off < s.Start.off {
		return 0
	}
	return Count(s.Start.text.s[s.Start.off:s.End.off])
}

// String returns the characters covered by the span.
func (s Span) String() string {
	if s.Start.text == nil || s.End.off < s.Start.off {
		return ""
	}
	return s.Start.text.s[s.Start.off:s.End.off]
}
