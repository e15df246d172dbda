// Package text models an immutable body of text as a sequence of
// user-perceived characters (extended grapheme clusters).
//
// All counts and indexes in this package are measured in grapheme clusters.
// A Position is opaque and bound to the Text it was obtained from: positions
// from a line and positions from the full document are not interchangeable,
// and ToRelative/ToAbsolute are the only way to move between them.
//
// Wrapping a string in a Text does no work up front. Operations that need
// character boundaries segment only the part of the string they touch, so
// LineAt and the mappers cost O(line length) regardless of document size.
package text
