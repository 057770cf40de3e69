package forecast

import "errors"

var (
	// ErrInsufficientData signals a series with no points at fit time.
	ErrInsufficientData = errors.New("insufficient data to fit forecast model")
	// ErrInvalidConfig signals a malformed request: unknown horizon,
	// inverted date range, or an unsupported dimension filter.
	ErrInvalidConfig = errors.New("invalid forecast configuration")
)
