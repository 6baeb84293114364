package registry

import "errors"

// ErrInput is returned when a required field is missing or empty.
// It is the only error the registry produces; check it with errors.Is.
var ErrInput = errors.New("input error")
