package sheet

import "errors"

// ErrInvalidFormat is returned when CSV input cannot be imported at all.
var ErrInvalidFormat = errors.New("invalid CSV format")
