package config

import (
	"fmt"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// StartFEN is the placement used by scripts that do not name one.
	// Empty means the standard starting position.
	StartFEN string

	// StopOnError ends a script at its first rejected move.
	StopOnError bool

	// DefaultPromotion is requested for pawn moves onto the end rank that
	// name no promotion piece. NoKind leaves such pawns unpromoted.
	DefaultPromotion chess.Kind
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.DefaultPromotion != chess.NoKind && !r.DefaultPromotion.Promotable() {
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
