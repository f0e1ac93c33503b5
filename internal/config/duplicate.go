package config

import "io"

// DuplicateConfig holds settings for duplicate position detection in batch
// analysis.
type DuplicateConfig struct {
	// Suppress skips positions already seen earlier in the batch
	Suppress bool

	// DuplicateFile receives the FEN of each suppressed position (may be nil)
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
