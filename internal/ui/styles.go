package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#A78BFA"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): the keyword being typed
// - Muted (gray): the rest of the line, hints
var (
	// Accent style for the keyword and other highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Marker style for the opening character in front of a keyword
	Marker = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	accentColor = defaultAccent
)

// ConfigureTheme applies the accent color from config. An empty value keeps
// the built-in accent. "none", "off", "default" and unparseable values
// disable it, leaving highlighted text in the terminal's default color.
func ConfigureTheme(accent string) {
	if strings.TrimSpace(accent) == "" {
		accent = defaultAccent
	}
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle().Underline(true)
		Marker = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	Marker = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

func normalizeAccentColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := strings.ToLower(value[1:])
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return "#" + hex, true
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}
