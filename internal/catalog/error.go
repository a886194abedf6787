package catalog

import "errors"

var (
	// ErrDetectFormat wraps header-read failures during format detection.
	// Callers fall back to the simple format when they see it.
	ErrDetectFormat = errors.New("csv format detection failed")

	// ErrMissingColumns marks a simple-format file whose header lacks
	// required columns; data rows are never read in that case.
	ErrMissingColumns = errors.New("missing required columns")
)
