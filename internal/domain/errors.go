package domain

import "errors"

// Sentinel errors used across all layers. Only file-level failures abort a
// run; per-entry failures are recorded in ProcessingStats instead.
var (
	ErrGlossaryNotFound = errors.New("glossary file not found")
	ErrConfigNotFound   = errors.New("book config not found")
	ErrValidation       = errors.New("validation error")
)
