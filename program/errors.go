package program

import (
	"errors"
	"fmt"
)

// Reasons a lex can fail.
var (
	ErrUnrecognizedCategory = errors.New("unrecognized category")
	ErrUnrecognizedCommand  = errors.New("unrecognized command")
	ErrMissingTerminator    = errors.New("missing parameter terminator")
	ErrNumberOutOfRange     = errors.New("number out of range")
)

// LexError reports where in the normalized source lexing stopped.
type LexError struct {
	// Pos is the byte offset into the normalized source.
	Pos int
	// Near is the text at Pos in S/T/L notation.
	Near string
	Err  error
}

func (e *LexError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("lex error at %d: %v at end of input", e.Pos, e.Err)
	}
	return fmt.Sprintf("lex error at %d: %v near %q", e.Pos, e.Err, e.Near)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
