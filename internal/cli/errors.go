package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid      = "CONFIG_INVALID"
	ErrFileReadError      = "FILE_READ_ERROR"
	ErrFileWriteError     = "FILE_WRITE_ERROR"
	ErrInvalidInput       = "INVALID_INPUT"
	ErrInvalidMarkers     = "INVALID_MARKERS"
	ErrPositionOutOfRange = "POSITION_OUT_OF_RANGE"
	ErrInternal           = "INTERNAL_ERROR"
)
