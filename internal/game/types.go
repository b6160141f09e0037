// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Symbol: one value of the game alphabet (a color or blank).
//   - Code: an ordered fixed-length sequence of symbols.
//   - Feedback: the (exact, color-only) result of scoring a guess.
//   - Turn: one history entry (guess + feedback).
//   - Status: coarse session state (playing/won/lost).
//   - Game: state for a single in-progress or finished game.

package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol is an index into the game alphabet. Symbols are compared only for
// equality; the numeric value carries no ordering meaning.
type Symbol int

// Code is an ordered sequence of symbols: either the secret or a guess.
type Code []Symbol

// Clone returns an independent copy of c.
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	out := make(Code, len(c))
	copy(out, c)
	return out
}

// Equal reports whether c and other hold the same symbols in the same order.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the raw symbol indices, e.g. "[0 3 3 6]".
func (c Code) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = strconv.Itoa(int(s))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Feedback is the result of scoring one guess against the secret.
//   - Exact:     same symbol at the same position ("black peg").
//   - ColorOnly: symbol present elsewhere after exact matches are removed ("white peg").
type Feedback struct {
	Exact     int `json:"exact"`
	ColorOnly int `json:"colorOnly"`
}

// Solved reports whether the feedback is a full match for a code of the given length.
func (f Feedback) Solved(length int) bool { return length > 0 && f.Exact == length }

func (f Feedback) String() string {
	return fmt.Sprintf("(%d, %d)", f.Exact, f.ColorOnly)
}

// Turn is one completed guess and its feedback.
type Turn struct {
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Status is the coarse state of a game session.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns "playing", "won" or "lost".
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// Finished reports whether the game is over (won or lost).
func (s Status) Finished() bool { return s != StatusPlaying }

// Game holds the state of a single Mastermind session.
// The session owns its secret and history exclusively; accessors hand out copies.
type Game struct {
	ID       string // Unique game identifier (UUID).
	MaxTurns int    // Maximum number of guesses allowed (12 by default).

	secret  Code
	history []Turn
	status  Status
}
