// Package player provides the codebreakers and codemakers that drive a game:
// a human at the terminal or the computer.
package player

import (
	"context"
	"fmt"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/palette"
)

// Guesser produces the next guess. turn is 1-based.
type Guesser interface {
	NextGuess(ctx context.Context, turn, length int) (game.Code, error)
}

// Codemaker chooses the secret for a new game.
type Codemaker interface {
	Secret(ctx context.Context, length int) (game.Code, error)
}

// Human asks the player at the terminal.
type Human struct {
	Prompter *input.Prompter
}

// NextGuess reads a full guess, one symbol per prompt.
func (h Human) NextGuess(ctx context.Context, turn, length int) (game.Code, error) {
	return h.Prompter.Code(ctx, length, fmt.Sprintf("turn %d, peg", turn))
}

// Secret lets the player choose the code the computer has to break.
func (h Human) Secret(ctx context.Context, length int) (game.Code, error) {
	return h.Prompter.Code(ctx, length, "secret peg")
}

// Random is the computer player. It guesses uniformly at random and
// makes no use of earlier feedback.
type Random struct {
	Palette *palette.Palette
	Intn    palette.Intn // nil means crypto/rand
}

// NextGuess returns a random code.
func (r Random) NextGuess(ctx context.Context, turn, length int) (game.Code, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.Palette.Random(length, r.Intn), nil
}

// Secret returns a random code.
func (r Random) Secret(ctx context.Context, length int) (game.Code, error) {
	return r.NextGuess(ctx, 0, length)
}

// Fixed is a codemaker with a predetermined secret (daily challenge, tests).
type Fixed game.Code

// Secret returns a copy of the fixed code, or ErrInvalidInput if the length differs.
func (f Fixed) Secret(ctx context.Context, length int) (game.Code, error) {
	if len(f) != length {
		return nil, fmt.Errorf("%w: fixed secret has %d symbols, want %d", game.ErrInvalidInput, len(f), length)
	}
	return game.Code(f).Clone(), nil
}
