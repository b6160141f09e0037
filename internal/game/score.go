// internal/game/score.go
//
// Scoring engine: compares a guess with the secret and returns Feedback.
// Pure and stateless; safe to call repeatedly.

package game

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for malformed codes (empty or mismatched lengths).
var ErrInvalidInput = errors.New("game: invalid input")

// Score implements the standard two-pass Mastermind counting rule.
//
// Pass 1:
//   - Every position where guess and secret agree is an exact match;
//     both positions are marked consumed.
//
// Pass 2:
//   - Each unconsumed guess position, left to right, claims the first
//     unconsumed secret position holding the same symbol (color-only match).
//
// Inputs are never modified. Blank is an ordinary symbol here.
func Score(guess, secret Code) (Feedback, error) {
	if len(secret) == 0 || len(guess) == 0 {
		return Feedback{}, fmt.Errorf("%w: empty code", ErrInvalidInput)
	}
	if len(guess) != len(secret) {
		return Feedback{}, fmt.Errorf("%w: guess has %d symbols, secret has %d", ErrInvalidInput, len(guess), len(secret))
	}

	n := len(secret)
	usedG := make([]bool, n)
	usedS := make([]bool, n)
	var fb Feedback

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
			usedG[i], usedS[i] = true, true
		}
	}

	for i := 0; i < n; i++ {
		if usedG[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !usedS[j] && guess[i] == secret[j] {
				fb.ColorOnly++
				usedG[i], usedS[j] = true, true
				break
			}
		}
	}
	return fb, nil
}
