// chessrules analyses chess positions: legal moves, game status, move
// replay and perft, for a single position or a batch file of them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	var closers []io.Closer
	closers = append(closers, setupLogFile(cfg)...)
	closers = append(closers, setupOutputFile(cfg)...)
	closers = append(closers, setupDuplicateFile(cfg)...)

	logger := cfg.Logger("chessrules: ")

	var code int
	if *batchFile != "" {
		code = runBatch(cfg, logger)
	} else {
		code = runSingle(cfg)
	}

	for _, c := range closers {
		c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	os.Exit(code)
}

// runSingle analyses the position given by -fen and -moves.
func runSingle(cfg *config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := analyse(ctx, *fenFlag, splitMoves(*movesFlag), cfg, numWorkers(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := output.NewWriter(cfg.OutputFile, cfg.Output, false).WriteReport(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

// runBatch analyses every position in the -batch file.
func runBatch(cfg *config.Config, logger *log.Logger) int {
	in := os.Stdin
	name := "stdin"
	if *batchFile != "-" {
		file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", *batchFile, err)
			return 1
		}
		defer file.Close()
		in, name = file, *batchFile
	}

	items, err := readBatch(in, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
		return 1
	}

	stats := processBatch(items, cfg, logger)
	if cfg.Verbose(1) {
		reportStatistics(logger, stats, cfg.Duplicate.Suppress)
	}
	if stats.Errors > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) []io.Closer {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		return []io.Closer{file}
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		return []io.Closer{file}
	}
	return nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) []io.Closer {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	cfg.OutputFilename = *outputFile
	return []io.Closer{file}
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) []io.Closer {
	if *duplicateFile == "" {
		return nil
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
	return []io.Closer{file}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(logger *log.Logger, stats BatchStats, duplicates bool) {
	if duplicates {
		logger.Printf("%d position(s) analysed, %d duplicate(s), %d error(s) out of %d.",
			stats.Analysed, stats.Duplicates, stats.Errors, stats.Total)
	} else {
		logger.Printf("%d position(s) analysed, %d error(s) out of %d.",
			stats.Analysed, stats.Errors, stats.Total)
	}
	if stats.Skipped > 0 {
		logger.Printf("%d position(s) skipped after the first error.", stats.Skipped)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyse chess positions given as FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBatch files (-batch) hold one position per line:\n")
	fmt.Fprintf(os.Stderr, "  <FEN> [; <uci moves>]\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with # are ignored.\n")
}
