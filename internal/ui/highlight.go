package ui

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// KeywordLine renders a line with the keyword highlighted.
//
// before is the line text ahead of the opening marker, keyword the text
// typed after the marker and after the remainder of the line. When width is
// positive the result is clipped to that many cells, dropping text from the
// left first so the keyword stays visible.
func KeywordLine(before, marker, keyword, after string, width int) string {
	if width > 0 {
		need := uniseg.StringWidth(marker) + uniseg.StringWidth(keyword)
		if after != "" {
			need += uniseg.StringWidth(ellipsis)
		}
		if uniseg.StringWidth(before)+need > width {
			before = dropLeft(before, width-need-uniseg.StringWidth(ellipsis))
			before = ellipsis + before
		}
	}

	out := Muted.Render(before) + Marker.Render(marker) + Accent.Render(keyword) + Muted.Render(after)
	if width > 0 {
		out = ansi.Truncate(out, width, ellipsis)
	}
	return out
}

// dropLeft removes leading clusters from s until it fits in width cells.
func dropLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	state := -1
	for s != "" && uniseg.StringWidth(s) > width {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
	}
	return s
}
