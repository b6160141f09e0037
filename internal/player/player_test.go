package player

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/palette"
)

func TestHuman(t *testing.T) {
	pal, err := palette.Default()
	require.NoError(t, err)
	var out strings.Builder
	h := Human{Prompter: input.New(strings.NewReader("1\n2\n3\n4\n5555\n"), &out, pal)}

	guess, err := h.NextGuess(context.Background(), 3, 4)
	require.NoError(t, err)
	assert.Equal(t, game.Code{0, 1, 2, 3}, guess)
	assert.Contains(t, out.String(), "turn 3, peg 1/4: ")

	secret, err := h.Secret(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, game.Code{4, 4, 4, 4}, secret)
}

func TestRandomIsReproducibleWithSeed(t *testing.T) {
	pal, err := palette.Default()
	require.NoError(t, err)

	a := Random{Palette: pal, Intn: palette.SeededIntn(1)}
	b := Random{Palette: pal, Intn: palette.SeededIntn(1)}
	for turn := 1; turn <= 5; turn++ {
		ga, err := a.NextGuess(context.Background(), turn, 4)
		require.NoError(t, err)
		gb, err := b.NextGuess(context.Background(), turn, 4)
		require.NoError(t, err)
		assert.Equal(t, ga, gb)
		assert.Len(t, ga, 4)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.NextGuess(ctx, 1, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixed(t *testing.T) {
	f := Fixed{0, 1, 2, 3}
	secret, err := f.Secret(context.Background(), 4)
	require.NoError(t, err)
	secret[0] = 6
	assert.Equal(t, Fixed{0, 1, 2, 3}, f)

	_, err = f.Secret(context.Background(), 5)
	assert.ErrorIs(t, err, game.ErrInvalidInput)
}
