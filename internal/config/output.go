package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ShowMoves lists the legal moves of each analysed position
	ShowMoves bool

	// UseSAN writes moves in SAN instead of UCI
	UseSAN bool

	// ShowFEN includes the resulting FEN in text output
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		ShowMoves: true,
		UseSAN:    true,
		ShowFEN:   true,
	}
}
