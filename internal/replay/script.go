// Package replay reads move scripts and plays them against a board.
//
// A script is plain text. Blank lines and everything after a '#' are ignored.
// An optional "fen <placement>" line before the first move sets the starting
// position; otherwise play starts from the standard position. Moves are in
// long algebraic form, several per line if wanted: e2e4, e2-e4, d5xe6, and
// e7e8q or e7e8=Q for promotions.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// Request is one parsed move.
type Request struct {
	Text      string
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
	Line      int
}

// Script is a parsed move script.
type Script struct {
	Name  string
	FEN   string // Starting placement; empty for the standard position
	Moves []Request
}

// ParseMove parses a single long algebraic move.
func ParseMove(text string) (Request, error) {
	req := Request{Text: text}
	s := text

	if len(s) < 4 {
		return req, fmt.Errorf("%q too short: %w", text, errors.ErrInvalidMoveText)
	}

	from, ok := chess.ParseSquare(s[:2])
	if !ok {
		return req, fmt.Errorf("bad origin in %q: %w", text, errors.ErrInvalidMoveText)
	}
	s = s[2:]
	if s[0] == '-' || s[0] == 'x' {
		s = s[1:]
	}

	if len(s) < 2 {
		return req, fmt.Errorf("%q too short: %w", text, errors.ErrInvalidMoveText)
	}
	to, ok := chess.ParseSquare(s[:2])
	if !ok {
		return req, fmt.Errorf("bad target in %q: %w", text, errors.ErrInvalidMoveText)
	}
	s = strings.TrimPrefix(s[2:], "=")

	switch len(s) {
	case 0:
	case 1:
		req.Promotion = chess.KindFromLetter(s[0])
		if req.Promotion == chess.NoKind {
			return req, fmt.Errorf("bad promotion letter in %q: %w", text, errors.ErrInvalidMoveText)
		}
	default:
		return req, fmt.Errorf("trailing text in %q: %w", text, errors.ErrInvalidMoveText)
	}

	req.From, req.To = from, to
	return req, nil
}

// ParseScript reads a move script. name is used in error messages.
func ParseScript(r io.Reader, name string) (*Script, error) {
	script := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if strings.EqualFold(fields[0], "fen") {
			if len(script.Moves) > 0 || script.FEN != "" {
				return nil, &errors.ParseError{
					Err:  fmt.Errorf("fen must precede the first move: %w", errors.ErrInvalidMoveText),
					File: name, Line: lineNum, Text: line,
				}
			}
			if len(fields) < 2 {
				return nil, &errors.ParseError{Err: errors.ErrInvalidPlacement, File: name, Line: lineNum, Text: line}
			}
			script.FEN = strings.Join(fields[1:], " ")
			continue
		}

		for _, field := range fields {
			req, err := ParseMove(field)
			if err != nil {
				return nil, &errors.ParseError{Err: err, File: name, Line: lineNum, Text: field}
			}
			req.Line = lineNum
			script.Moves = append(script.Moves, req)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return script, nil
}
