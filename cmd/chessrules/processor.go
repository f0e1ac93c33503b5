// processor.go - Batch processing
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// BatchStats summarises a batch run.
type BatchStats struct {
	Total      int
	Analysed   int
	Errors     int
	Duplicates int
	Skipped    int
}

// readBatch reads analysis items from r. Each line that is not blank and
// does not start with # holds a FEN, optionally followed by ';' and a list
// of UCI moves to play from it.
func readBatch(r io.Reader, name string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fen, moves, _ := strings.Cut(line, ";")
		items = append(items, worker.WorkItem{
			Source: fmt.Sprintf("%s:%d", name, lineNo),
			FEN:    strings.TrimSpace(fen),
			Moves:  splitMoves(moves),
		})
	}
	return items, scanner.Err()
}

// processBatch analyses items on the worker pool and writes the reports in
// input order. Perft inside each item runs single-threaded since the pool
// already uses every worker.
func processBatch(items []worker.WorkItem, cfg *config.Config, logger *log.Logger) BatchStats {
	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		report, err := analyse(context.Background(), item.FEN, item.Moves, cfg, 1)
		if err != nil {
			return worker.ProcessResult{Error: err}
		}
		report.Source = item.Source
		return worker.ProcessResult{Report: report}
	}

	n := numWorkers(cfg)
	results := worker.Run(items, processFunc, cfg.Analysis.FailFast,
		worker.WithWorkers(n), worker.WithBufferSize(n*2))

	stats := BatchStats{Total: len(items)}
	out := output.NewWriter(cfg.OutputFile, cfg.Output, true)
	defer func() {
		if err := out.Close(); err != nil {
			logger.Printf("writing reports: %v", err)
		}
	}()
	seen := hashing.NewPositionCounter()

	for _, result := range results {
		if result.Error != nil {
			stats.Errors++
			logger.Printf("%s: %v", result.Item.Source, result.Error)
			writeOrLog(out, &output.Report{
				Source:   result.Item.Source,
				StartFEN: result.Item.FEN,
				Error:    result.Error.Error(),
			}, logger)
			continue
		}
		report, ok := result.Report.(*output.Report)
		if !ok {
			stats.Skipped++
			continue
		}
		if cfg.Duplicate.Suppress && seen.Add(report.Signature) > 1 {
			stats.Duplicates++
			if cfg.Duplicate.DuplicateFile != nil {
				fmt.Fprintln(cfg.Duplicate.DuplicateFile, report.FEN)
			}
			if cfg.Verbose(2) {
				logger.Printf("%s: duplicate of an earlier position", report.Source)
			}
			continue
		}
		stats.Analysed++
		writeOrLog(out, report, logger)
	}
	return stats
}

func writeOrLog(out output.ReportWriter, report *output.Report, logger *log.Logger) {
	if err := out.WriteReport(report); err != nil {
		logger.Printf("writing report: %v", err)
	}
}
