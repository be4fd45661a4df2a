package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultMaxPly bounds a self-play game that reaches no terminal position.
const DefaultMaxPly = 200

// SelfPlayConfig holds settings for random self-play games.
type SelfPlayConfig struct {
	// Games is the number of games to play; 0 disables self-play.
	Games int

	// MaxPly stops a game after this many half-moves.
	MaxPly int

	// Seed makes move choice reproducible.
	Seed int64

	// SuppressDuplicates drops games that repeat an earlier one.
	SuppressDuplicates bool
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		MaxPly: DefaultMaxPly,
		Seed:   1,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("game count %d is negative: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.MaxPly < 1 {
		return fmt.Errorf("max ply %d must be at least 1: %w", s.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
