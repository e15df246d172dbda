package interlink

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/interlink/text"
)

// ErrInvalidMarkers is returned when a marker pair cannot delimit a keyword.
var ErrInvalidMarkers = errors.New("invalid markers")

// Markers is the pair of characters that open and close an interlink.
type Markers struct {
	Opening string
	Closing string
}

// DefaultMarkers are the square brackets.
var DefaultMarkers = Markers{Opening: "[", Closing: "]"}

// Validate checks that each marker is a single character, neither is a line
// terminator, and the two differ.
func (m Markers) Validate() error {
	if err := validateMarker("opening", m.Opening); err != nil {
		return err
	}
	if err := validateMarker("closing", m.Closing); err != nil {
		return err
	}
	if m.Opening == m.Closing {
		return fmt.Errorf("%w: opening and closing are both %q", ErrInvalidMarkers, m.Opening)
	}
	return nil
}

func validateMarker(name, marker string) error {
	if n := text.Count(marker); n != 1 {
		return fmt.Errorf("%w: %s marker %q must be exactly one character, got %d", ErrInvalidMarkers, name, marker, n)
	}
	if text.IsTerminator(marker) {
		return fmt.Errorf("%w: %s marker cannot be a line terminator", ErrInvalidMarkers, name)
	}
	return nil
}
