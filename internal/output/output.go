// Package output formats position analysis reports as text or JSON.
package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// Report is the result of analysing one position.
type Report struct {
	Source     string       `json:"source,omitempty"`
	StartFEN   string       `json:"startFen"`
	Moves      []string     `json:"moves,omitempty"`
	FEN        string       `json:"fen"`
	SideToMove string       `json:"sideToMove"`
	Status     string       `json:"status"`
	Result     string       `json:"result"`
	InCheck    bool         `json:"inCheck"`
	Repetition int          `json:"repetition"`
	LegalMoves []string     `json:"legalMoves,omitempty"`
	Perft      *PerftReport `json:"perft,omitempty"`
	Error      string       `json:"error,omitempty"`

	// Signature identifies the position for duplicate detection
	Signature uint64 `json:"-"`
}

// PerftReport holds perft results for a report.
type PerftReport struct {
	Depth  int           `json:"depth"`
	Nodes  uint64        `json:"nodes"`
	Divide []DivideEntry `json:"divide,omitempty"`
}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// NewWriter returns the writer for the configured format. In batch mode
// JSON reports are collected and written as one document on Close.
func NewWriter(w io.Writer, cfg *config.OutputConfig, batch bool) ReportWriter {
	if cfg.Format == config.JSON {
		if batch {
			return NewJSONWriter(w)
		}
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}
