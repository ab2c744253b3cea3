package domain

import "errors"

// ErrToolNotFound marks an extraction tool that could not be resolved on the
// search path. Callers use it to tell environment misconfiguration apart
// from a tool that ran and rejected the input.
var ErrToolNotFound = errors.New("extraction tool not found")
