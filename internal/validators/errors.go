package validators

import "errors"

// ErrValidationFailed is the sentinel every validation failure wraps, so the
// HTTP layer can map the whole class to a single status code with errors.Is.
var ErrValidationFailed = errors.New("request validation failed")
