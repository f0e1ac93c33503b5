// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	fenFlag   = flag.String("fen", "", "Position to analyse (default: initial position)")
	movesFlag = flag.String("moves", "", "Space-separated UCI moves to play from the position")
	batchFile = flag.String("batch", "", "File of positions to analyse, one FEN per line (- for stdin)")

	// Analysis options
	perftDepth = flag.Int("perft", 0, "Count move tree leaves to depth N")
	divide     = flag.Bool("divide", false, "Report the perft count below each root move")
	workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	failFast   = flag.Bool("fail-fast", false, "Stop batch analysis at the first bad position")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	uciMoves     = flag.Bool("uci", false, "Write moves in UCI instead of SAN")
	noMoves      = flag.Bool("nomoves", false, "Don't list legal moves")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in batch mode")
	duplicateFile      = flag.String("d", "", "Write the FEN of each duplicate position to this file")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=per-position commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds the configuration from command-line flags.
func buildConfig() *config.Config {
	cfg := config.NewConfigBuilder().
		WithJSONOutput(*jsonOutput).
		WithUCIMoves(*uciMoves).
		WithPerft(*perftDepth, *divide).
		WithWorkers(*workers).
		WithFailFast(*failFast).
		WithDuplicateSuppression(*suppressDuplicates || *duplicateFile != "").
		WithVerbosity(*verbosity).
		Build()

	cfg.Output.ShowMoves = !*noMoves
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg
}
