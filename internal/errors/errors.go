// Package errors provides sentinel errors and error types for the move engine.
// It defines the ways a move can be rejected and a structured error type that
// preserves the move's context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/oolong/internal/chess"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to check which check a move failed.
var (
	// ErrOutOfReach indicates the target fails the piece's movement geometry.
	ErrOutOfReach = errors.New("target out of reach")

	// ErrBlocked indicates a square on the piece's path is occupied.
	ErrBlocked = errors.New("path blocked")

	// ErrFriendFire indicates the target holds a piece of the mover's own colour.
	ErrFriendFire = errors.New("target occupied by own piece")

	// ErrPromotion indicates an invalid promotion request.
	ErrPromotion = errors.New("invalid promotion")

	// ErrOolong indicates an attempt to move a piece of the player not on move.
	// The engine does not track turns; turn managers raise this.
	ErrOolong = errors.New("piece does not belong to the acting player")

	// ErrNoPiece indicates the piece to move is not on the board.
	ErrNoPiece = errors.New("no such piece")
)

// Sentinel errors for setup, input and configuration.
var (
	// ErrInvalidPlacement indicates a malformed FEN piece-placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInvalidMoveText indicates an unparseable move in a move script.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the context of the attempted move: the
// piece, where it stood and where it was sent. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err       error         // One of the move sentinels
	Piece     chess.PieceID // The piece asked to move
	Kind      chess.Kind    // Its kind (NoKind if the piece was not found)
	Owner     chess.Colour  // Its owner
	From      chess.Square  // Its square at the time of the request
	To        chess.Square  // The requested target
	Promotion chess.Kind    // Requested promotion kind (promotion errors only)
}

// NewMoveError builds a MoveError for piece p moving to target.
func NewMoveError(err error, p chess.Piece, target chess.Square) *MoveError {
	return &MoveError{
		Err:   err,
		Piece: p.ID,
		Kind:  p.Kind,
		Owner: p.Owner,
		From:  p.Square,
		To:    target,
	}
}

// NewPromotionError builds a promotion MoveError carrying the requested kind.
func NewPromotionError(p chess.Piece, target chess.Square, kind chess.Kind) *MoveError {
	e := NewMoveError(ErrPromotion, p, target)
	e.Promotion = kind
	return e
}

// NewOolongError builds the error a turn manager returns when p is moved out of turn.
func NewOolongError(p chess.Piece, target chess.Square) *MoveError {
	return NewMoveError(ErrOolong, p, target)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Kind != chess.NoKind {
		parts = append(parts, fmt.Sprintf("%s %s #%d", e.Owner, e.Kind, e.Piece))
	} else {
		parts = append(parts, fmt.Sprintf("piece #%d", e.Piece))
	}

	parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))

	if e.Promotion != chess.NoKind {
		parts = append(parts, fmt.Sprintf("promotion to %s", e.Promotion))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move-script error with file location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Text string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}

	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
