package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports in a human readable layout.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report as a block of labelled lines.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&sb, "[%s]\n", r.Source)
	}
	if r.Error != "" {
		fmt.Fprintf(&sb, "Start:    %s\n", r.StartFEN)
		fmt.Fprintf(&sb, "Error:    %s\n\n", r.Error)
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	if len(r.Moves) > 0 {
		fmt.Fprintf(&sb, "Start:    %s\n", r.StartFEN)
		fmt.Fprintf(&sb, "Played:   %s\n", strings.Join(r.Moves, " "))
	}
	if tw.cfg.ShowFEN {
		fmt.Fprintf(&sb, "FEN:      %s\n", r.FEN)
	}
	fmt.Fprintf(&sb, "Status:   %s\n", statusLine(r))
	if r.Repetition > 1 {
		fmt.Fprintf(&sb, "Repeated: %d times\n", r.Repetition)
	}
	if len(r.LegalMoves) > 0 {
		fmt.Fprintf(&sb, "Legal:    %d: %s\n", len(r.LegalMoves), strings.Join(r.LegalMoves, " "))
	}

	if p := r.Perft; p != nil {
		for _, d := range p.Divide {
			fmt.Fprintf(&sb, "  %s: %d\n", d.Move, d.Nodes)
		}
		fmt.Fprintf(&sb, "Perft(%d): %d\n", p.Depth, p.Nodes)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func statusLine(r *Report) string {
	if r.Result != "*" {
		return r.Status + " (" + r.Result + ")"
	}
	line := r.Status + ", " + r.SideToMove + " to move"
	if r.InCheck {
		line += ", in check"
	}
	return line
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
