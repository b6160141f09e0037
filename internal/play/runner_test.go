package play

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/palette"
	"github.com/robalobadob/mastermind/internal/render"
	"github.com/robalobadob/mastermind/internal/store"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

type harness struct {
	runner *Runner
	out    *bytes.Buffer
	store  store.Store
	pal    *palette.Palette
}

func newHarness(t *testing.T, in string, seed uint64) harness {
	t.Helper()
	pal, err := palette.Default()
	require.NoError(t, err)
	var out bytes.Buffer
	st := store.NewMemoryStore()
	return harness{
		runner: &Runner{
			Palette:  pal,
			Renderer: render.New(pal, &out, false),
			Prompter: input.New(strings.NewReader(in), &out, pal),
			Store:    st,
			Intn:     palette.SeededIntn(seed),
			Now:      func() time.Time { return fixedNow },
		},
		out:   &out,
		store: st,
		pal:   pal,
	}
}

// miss returns a code that differs from c at every position.
func miss(pal *palette.Palette, c game.Code) game.Code {
	out := make(game.Code, len(c))
	for i, s := range c {
		out[i] = game.Symbol((int(s) + 1) % pal.Len())
	}
	return out
}

func defaults() Settings {
	return Settings{Length: 4, MaxTurns: game.DefaultMaxTurns, DailySalt: "test"}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"breaker", "maker", "daily", "auto"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}
	_, err := ParseMode("solver")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestBreakerWins(t *testing.T) {
	pal, err := palette.Default()
	require.NoError(t, err)
	secret := pal.Random(4, palette.SeededIntn(9))
	in := pal.Keys(miss(pal, secret)) + "\n" + pal.Keys(secret) + "\n"

	h := newHarness(t, in, 9)
	res, err := h.runner.Start(context.Background(), ModeBreaker, defaults())
	require.NoError(t, err)

	assert.Equal(t, "won", res.Status)
	assert.Equal(t, 2, res.Turns)
	assert.Equal(t, pal.Keys(secret), res.Secret)
	assert.Equal(t, "breaker", res.Mode)
	assert.Contains(t, h.out.String(), "turn 2/12")
	assert.Contains(t, h.out.String(), "You cracked the code in 2 turns!")

	saved, err := h.store.Get(context.Background(), res.GameID)
	require.NoError(t, err)
	assert.Equal(t, res, saved)
}

func TestBreakerLoses(t *testing.T) {
	pal, err := palette.Default()
	require.NoError(t, err)
	secret := pal.Random(4, palette.SeededIntn(3))
	wrong := pal.Keys(miss(pal, secret)) + "\n"

	h := newHarness(t, strings.Repeat(wrong, 3), 3)
	s := defaults()
	s.MaxTurns = 3
	res, err := h.runner.Start(context.Background(), ModeBreaker, s)
	require.NoError(t, err)

	assert.Equal(t, "lost", res.Status)
	assert.Equal(t, 3, res.Turns)
	assert.Contains(t, h.out.String(), "turn 3/3")
	assert.Contains(t, h.out.String(), "You ran out of turns")
	assert.Contains(t, h.out.String(), "|"+strings.Join(strings.Split(pal.Keys(secret), ""), "|")+"|    |")
}

func TestBreakerQuits(t *testing.T) {
	h := newHarness(t, "1\nquit\n", 1)
	res, err := h.runner.Start(context.Background(), ModeBreaker, defaults())
	require.NoError(t, err)

	assert.Equal(t, "quit", res.Status)
	assert.Equal(t, 0, res.Turns)
	assert.Contains(t, h.out.String(), "Game abandoned")

	list, err := h.store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBreakerEOFEndsGame(t *testing.T) {
	h := newHarness(t, "", 1)
	res, err := h.runner.Start(context.Background(), ModeBreaker, defaults())
	require.NoError(t, err)
	assert.Equal(t, "quit", res.Status)
}

func TestMakerMode(t *testing.T) {
	h := newHarness(t, "1\n2\n3\n4\n", 5)
	s := defaults()
	s.MaxTurns = 4
	res, err := h.runner.Start(context.Background(), ModeMaker, s)
	require.NoError(t, err)

	assert.Equal(t, "1234", res.Secret)
	assert.Contains(t, []string{"won", "lost"}, res.Status)
	assert.GreaterOrEqual(t, res.Turns, 1)
	assert.LessOrEqual(t, res.Turns, 4)
	assert.Contains(t, h.out.String(), "Choose the secret code")
}

func TestMakerQuitsBeforeSecret(t *testing.T) {
	h := newHarness(t, "q\n", 5)
	res, err := h.runner.Start(context.Background(), ModeMaker, defaults())
	require.NoError(t, err)
	assert.Equal(t, "quit", res.Status)
	assert.Zero(t, res.Turns)
	assert.Contains(t, h.out.String(), "Game abandoned")

	require.NotEmpty(t, res.GameID)
	saved, err := h.store.Get(context.Background(), res.GameID)
	require.NoError(t, err)
	assert.Equal(t, res, saved)
}

func TestDailyMode(t *testing.T) {
	pal, err := palette.Default()
	require.NoError(t, err)
	idx, err := daily.Secret(fixedNow, "test", pal.Len(), 4)
	require.NoError(t, err)
	secret := pal.FromIndices(idx)

	h := newHarness(t, pal.Keys(secret)+"\n", 1)
	res, err := h.runner.Start(context.Background(), ModeDaily, defaults())
	require.NoError(t, err)

	assert.Equal(t, "won", res.Status)
	assert.Equal(t, 1, res.Turns)
	assert.Contains(t, h.out.String(), "Daily challenge for 2026-10-18")
}

func TestAutoMode(t *testing.T) {
	h := newHarness(t, "", 11)
	s := defaults()
	s.MaxTurns = 5
	res, err := h.runner.Start(context.Background(), ModeAuto, s)
	require.NoError(t, err)
	assert.NotEqual(t, "quit", res.Status)
	assert.Contains(t, h.out.String(), "The computer")
}

func TestStartRejectsUnknownMode(t *testing.T) {
	h := newHarness(t, "", 1)
	_, err := h.runner.Start(context.Background(), Mode("solver"), defaults())
	assert.ErrorIs(t, err, ErrUnknownMode)
}

// scripted replays fixed guesses.
type scripted struct{ guesses []game.Code }

func (s *scripted) NextGuess(ctx context.Context, turn, length int) (game.Code, error) {
	g := s.guesses[0]
	s.guesses = s.guesses[1:]
	return g, nil
}

func TestRunScoresEveryTurn(t *testing.T) {
	h := newHarness(t, "", 1)
	g, err := game.New(game.Code{0, 0, 1, 2}, game.DefaultMaxTurns)
	require.NoError(t, err)

	breaker := &scripted{guesses: []game.Code{{0, 1, 0, 3}, {0, 0, 1, 2}}}
	res, err := h.runner.Run(context.Background(), g, ModeBreaker, breaker, "You")
	require.NoError(t, err)
	assert.Equal(t, "won", res.Status)

	assert.Equal(t, []game.Turn{
		{Guess: game.Code{0, 1, 0, 3}, Feedback: game.Feedback{Exact: 1, ColorOnly: 2}},
		{Guess: game.Code{0, 0, 1, 2}, Feedback: game.Feedback{Exact: 4}},
	}, g.History())
	assert.Contains(t, h.out.String(), "|1|2|1|4|BWW |")
}

func TestRunRejectsMalformedGuess(t *testing.T) {
	h := newHarness(t, "", 1)
	g, err := game.New(game.Code{0, 1, 2, 3}, game.DefaultMaxTurns)
	require.NoError(t, err)

	_, err = h.runner.Run(context.Background(), g, ModeBreaker, &scripted{guesses: []game.Code{{0, 1}}}, "You")
	assert.ErrorIs(t, err, game.ErrInvalidInput)
}
