package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the session server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// MaxGames caps the number of live sessions (0 = unlimited)
	MaxGames int

	// AllowOrigins is the CORS allow list
	AllowOrigins string

	// IdleTimeout is the HTTP keep-alive idle timeout
	IdleTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
		IdleTimeout:  60 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("negative game limit %d: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
