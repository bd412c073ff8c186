package workspace

import "errors"

// ErrClearNotConfirmed is returned when Clear is called without confirmation.
var ErrClearNotConfirmed = errors.New("clear requires confirmation")
