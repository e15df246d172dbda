// Package interlink detects an interlink reference that is still being typed.
//
// An interlink has the shape `[keyword`: an opening marker followed by the
// keyword text, not yet closed by the closing marker. Keyword reports the
// keyword to the left of a cursor so an editor can offer link targets while
// the user types. The lookup is bounded to the line holding the cursor.
package interlink
