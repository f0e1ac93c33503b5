// Package config provides runtime configuration shared by the chessrules
// and chessd binaries.
package config

import (
	"io"
	"log"
	"os"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable report
	JSON                     // One JSON document per result
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-item commentary

	// Grouped settings
	Output    *OutputConfig
	Analysis  *AnalysisConfig
	Duplicate *DuplicateConfig
	Server    *ServerConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		Duplicate:  NewDuplicateConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logger returns a logger writing to LogFile. Messages below the configured
// verbosity should be filtered by the caller with Verbose.
func (c *Config) Logger(prefix string) *log.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return log.New(w, prefix, log.LstdFlags)
}

// Verbose reports whether messages at the given level should be logged.
func (c *Config) Verbose(level int) bool {
	return c.Verbosity >= level
}
