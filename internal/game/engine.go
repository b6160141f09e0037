// internal/game/engine.go
//
// Game session for a single Mastermind game.
// Responsibilities:
//   - Create new games around a fixed secret and a turn limit.
//   - Validate and apply guesses (game not finished, matching length).
//   - Score guesses through Score and append them to the history.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The secret is chosen by the caller (random, daily or human codemaker).
//   - Game IDs are UUIDs so log lines and stored results can be correlated.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxTurns is the number of guesses allowed before the game is lost.
const DefaultMaxTurns = 12

// ErrFinished is returned when a guess is applied to a game that is already over.
var ErrFinished = errors.New("game: finished")

// New constructs a game around secret.
// The secret is copied; later changes to the caller's slice do not affect the game.
func New(secret Code, maxTurns int) (*Game, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidInput)
	}
	if maxTurns < 1 {
		return nil, fmt.Errorf("%w: max turns must be at least 1, got %d", ErrInvalidInput, maxTurns)
	}
	return &Game{
		ID:       uuid.NewString(),
		MaxTurns: maxTurns,
		secret:   secret.Clone(),
		history:  []Turn{},
	}, nil
}

// ApplyGuess scores a guess and records it.
// Returns the feedback, the new status, or an error.
//
// State transitions:
//   - Exact == length → won.
//   - Else if the number of turns reaches MaxTurns → lost.
func (g *Game) ApplyGuess(guess Code) (Feedback, Status, error) {
	if g.status.Finished() {
		return Feedback{}, g.status, ErrFinished
	}
	fb, err := Score(guess, g.secret)
	if err != nil {
		return Feedback{}, g.status, err
	}
	g.history = append(g.history, Turn{Guess: guess.Clone(), Feedback: fb})

	switch {
	case fb.Solved(len(g.secret)):
		g.status = StatusWon
	case len(g.history) >= g.MaxTurns:
		g.status = StatusLost
	}
	return fb, g.status, nil
}

// IsWinning reports whether guess equals the secret element-wise.
// Always agrees with Score(guess, secret).Solved.
func (g *Game) IsWinning(guess Code) bool { return g.secret.Equal(guess) }

// Status reports the current state.
func (g *Game) Status() Status { return g.status }

// Length is the number of symbols in the secret.
func (g *Game) Length() int { return len(g.secret) }

// Turns is the number of completed guesses.
func (g *Game) Turns() int { return len(g.history) }

// Remaining is the number of guesses left.
func (g *Game) Remaining() int { return g.MaxTurns - len(g.history) }

// Secret returns a copy of the secret, e.g. for the reveal after a loss.
func (g *Game) Secret() Code { return g.secret.Clone() }

// History returns a copy of the turns played so far, oldest first.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	for i, t := range g.history {
		out[i] = Turn{Guess: t.Guess.Clone(), Feedback: t.Feedback}
	}
	return out
}
