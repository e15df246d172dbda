package interlink

import "github.com/rivo/uniseg"

// HasUnbalancedClosing reports whether fragment holds a closing marker that
// no opening marker before it can absorb.
//
// Openings with nothing to close are ignored, so "[" and "[][" are balanced
// while "][" and "]]" are not. The fragment is read once, front to back: a
// closing is unbalanced exactly when every earlier opening has already been
// used by an earlier closing.
func HasUnbalancedClosing(fragment string, m Markers) bool {
	open := 0
	state := -1
	for fragment != "" {
		var cluster string
		cluster, fragment, _, state = uniseg.StepString(fragment, state)
		switch cluster {
		case m.Opening:
			open++
		case m.Closing:
			if open == 0 {
				return true
			}
			open--
		}
	}
	return false
}

// TrailingKeyword finds the last opening marker in fragment and returns the
// text after it along with the character index where that text starts.
//
// ok is false when there is no opening marker, when nothing follows the last
// one, or when what follows contains a closing marker.
func TrailingKeyword(fragment string, m Markers) (start int, keyword string, ok bool) {
	var (
		idx       int
		off       int
		keywordAt = -1
		keywordOf int
		closed    bool
		state     = -1
		rest      = fragment
	)
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		off += len(cluster)
		idx++
		switch cluster {
		case m.Opening:
			keywordAt = off
			keywordOf = idx
			closed = false
		case m.Closing:
			closed = true
		}
	}

	if keywordAt < 0 || closed || keywordAt == len(fragment) {
		return 0, "", false
	}
	return keywordOf, fragment[keywordAt:], true
}
