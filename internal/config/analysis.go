package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds perft requests; deeper trees take hours.
const MaxPerftDepth = 8

// AnalysisConfig holds settings for position analysis.
type AnalysisConfig struct {
	// PerftDepth counts move tree leaves to this depth (0 disables perft)
	PerftDepth int

	// Divide reports the perft count below each root move
	Divide bool

	// Workers is the number of goroutines for batch analysis and perft
	// (0 = one per CPU)
	Workers int

	// FailFast stops batch analysis at the first bad position
	FailFast bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.Divide && a.PerftDepth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
