package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	_, err := New(nil, DefaultMaxTurns)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(Code{A, B, C, D}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	g, err := New(Code{A, B, C, D}, DefaultMaxTurns)
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, StatusPlaying, g.Status())
	assert.Equal(t, 4, g.Length())
	assert.Equal(t, 12, g.Remaining())
}

func TestNewCopiesSecret(t *testing.T) {
	secret := Code{A, B, C, D}
	g, err := New(secret, DefaultMaxTurns)
	require.NoError(t, err)

	secret[0] = F
	assert.Equal(t, Code{A, B, C, D}, g.Secret())

	leaked := g.Secret()
	leaked[1] = F
	assert.Equal(t, Code{A, B, C, D}, g.Secret())
}

func TestApplyGuessWin(t *testing.T) {
	g, err := New(Code{A, B, C, D}, DefaultMaxTurns)
	require.NoError(t, err)

	fb, st, err := g.ApplyGuess(Code{A, C, B, E})
	require.NoError(t, err)
	assert.Equal(t, Feedback{1, 2}, fb)
	assert.Equal(t, StatusPlaying, st)

	fb, st, err = g.ApplyGuess(Code{A, B, C, D})
	require.NoError(t, err)
	assert.Equal(t, Feedback{4, 0}, fb)
	assert.Equal(t, StatusWon, st)
	assert.Equal(t, "won", st.String())
	assert.Equal(t, 2, g.Turns())

	_, st, err = g.ApplyGuess(Code{A, B, C, D})
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, StatusWon, st)
	assert.Equal(t, 2, g.Turns())
}

func TestApplyGuessLoss(t *testing.T) {
	g, err := New(Code{A, B, C, D}, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, st, err := g.ApplyGuess(Code{E, E, E, E})
		require.NoError(t, err)
		require.Equal(t, StatusPlaying, st)
	}
	_, st, err := g.ApplyGuess(Code{E, E, E, E})
	require.NoError(t, err)
	assert.Equal(t, StatusLost, st)
	assert.Equal(t, "lost", st.String())
	assert.True(t, st.Finished())
	assert.Equal(t, 0, g.Remaining())
}

func TestApplyGuessWinOnLastTurn(t *testing.T) {
	g, err := New(Code{A, B, C, D}, 1)
	require.NoError(t, err)

	_, st, err := g.ApplyGuess(Code{A, B, C, D})
	require.NoError(t, err)
	assert.Equal(t, StatusWon, st)
}

func TestApplyGuessRejectsLengthMismatch(t *testing.T) {
	g, err := New(Code{A, B, C, D}, DefaultMaxTurns)
	require.NoError(t, err)

	_, st, err := g.ApplyGuess(Code{A, B, C})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, StatusPlaying, st)
	assert.Equal(t, 0, g.Turns(), "rejected guess must not consume a turn")
}

func TestHistoryIsAppendOnly(t *testing.T) {
	g, err := New(Code{A, A, B, C}, DefaultMaxTurns)
	require.NoError(t, err)

	guesses := []Code{{A, B, A, D}, {E, E, E, E}, {C, A, A, B}}
	var snapshots [][]Turn
	for i, guess := range guesses {
		_, _, err := g.ApplyGuess(guess)
		require.NoError(t, err)
		snapshots = append(snapshots, g.History())
		require.Len(t, g.History(), i+1)
	}

	// Mutating inputs and returned copies must not reach the stored history.
	guesses[0][0] = F
	snapshots[2][1].Guess[0] = F
	snapshots[2][1].Feedback.Exact = 99

	h := g.History()
	assert.Equal(t, snapshots[0], h[:1])
	assert.Equal(t, snapshots[1], h[:2])
	assert.Equal(t, Turn{Guess: Code{A, B, A, D}, Feedback: Feedback{1, 2}}, h[0])
	assert.Equal(t, Turn{Guess: Code{E, E, E, E}, Feedback: Feedback{0, 0}}, h[1])
	assert.Equal(t, Turn{Guess: Code{C, A, A, B}, Feedback: Feedback{1, 3}}, h[2])
}

func TestIsWinningAgreesWithScore(t *testing.T) {
	g, err := New(Code{A, B, Blank, D}, DefaultMaxTurns)
	require.NoError(t, err)

	for _, guess := range []Code{{A, B, Blank, D}, {A, B, C, D}, {D, Blank, B, A}} {
		fb, err := Score(guess, g.Secret())
		require.NoError(t, err)
		assert.Equal(t, fb.Solved(g.Length()), g.IsWinning(guess), "guess %v", guess)
	}
}
