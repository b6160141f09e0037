// internal/play/runner.go
//
// Turn loop for a single game.
// Responsibilities:
//   - Pick the codemaker and codebreaker for a mode and create the game.
//   - Per turn: ask the breaker for a guess, apply it, draw the board.
//   - Stop on won/lost, or when the player quits; record the result.
//
// Modes:
//   - breaker: the player guesses a random secret.
//   - maker:   the player sets the secret, the computer guesses at random.
//   - daily:   the player guesses the secret of the day.
//   - auto:    the computer guesses a random secret (demo).

package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/palette"
	"github.com/robalobadob/mastermind/internal/player"
	"github.com/robalobadob/mastermind/internal/render"
	"github.com/robalobadob/mastermind/internal/store"
)

// Mode selects who makes and who breaks the code.
type Mode string

const (
	ModeBreaker Mode = "breaker"
	ModeMaker   Mode = "maker"
	ModeDaily   Mode = "daily"
	ModeAuto    Mode = "auto"
)

// ErrUnknownMode is returned for a mode outside the list above.
var ErrUnknownMode = errors.New("play: unknown mode")

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeBreaker, ModeMaker, ModeDaily, ModeAuto:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (want breaker, maker, daily or auto)", ErrUnknownMode, s)
}

// Settings are the per-game parameters.
type Settings struct {
	Length    int
	MaxTurns  int
	DailySalt string
	Date      time.Time // daily mode; zero means today
}

// Runner plays games against the terminal.
type Runner struct {
	Palette  *palette.Palette
	Renderer *render.Renderer
	Prompter *input.Prompter
	Store    store.Store
	Intn     palette.Intn // random source for secrets and computer guesses; nil means crypto/rand
	Now      func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Start sets up a game for mode and plays it to the end.
func (r *Runner) Start(ctx context.Context, mode Mode, s Settings) (store.Result, error) {
	human := player.Human{Prompter: r.Prompter}
	computer := player.Random{Palette: r.Palette, Intn: r.Intn}

	var (
		maker   player.Codemaker
		breaker player.Guesser
		who     string
	)
	switch mode {
	case ModeBreaker:
		maker, breaker, who = computer, human, "You"
	case ModeMaker:
		maker, breaker, who = human, computer, "The computer"
		r.Renderer.Printf("Choose the secret code the computer has to break.\n")
	case ModeDaily:
		date := s.Date
		if date.IsZero() {
			date = r.now()
		}
		idx, err := daily.Secret(date, s.DailySalt, r.Palette.Len(), s.Length)
		if err != nil {
			return store.Result{}, err
		}
		maker, breaker, who = player.Fixed(r.Palette.FromIndices(idx)), human, "You"
		r.Renderer.Printf("Daily challenge for %s\n", daily.DateKey(date))
	case ModeAuto:
		maker, breaker, who = computer, computer, "The computer"
	default:
		return store.Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	secret, err := maker.Secret(ctx, s.Length)
	if errors.Is(err, input.ErrQuit) {
		r.Renderer.Printf("Game abandoned before a code was set.\n")
		res := store.Result{GameID: uuid.NewString(), Mode: string(mode), Status: "quit", Finished: r.now()}
		r.record(ctx, res)
		return res, nil
	}
	if err != nil {
		return store.Result{}, err
	}
	g, err := game.New(secret, s.MaxTurns)
	if err != nil {
		return store.Result{}, err
	}
	log.Debug().Str("gameId", g.ID).Str("mode", string(mode)).Int("length", g.Length()).Int("maxTurns", g.MaxTurns).Msg("game started")
	return r.Run(ctx, g, mode, breaker, who)
}

// Run plays g until it is won, lost or abandoned, then saves the result.
// Quitting is a normal outcome reported with status "quit".
func (r *Runner) Run(ctx context.Context, g *game.Game, mode Mode, breaker player.Guesser, who string) (store.Result, error) {
	quit := false
	for !g.Status().Finished() {
		guess, err := breaker.NextGuess(ctx, g.Turns()+1, g.Length())
		if errors.Is(err, input.ErrQuit) {
			quit = true
			break
		}
		if err != nil {
			return store.Result{}, err
		}
		fb, st, err := g.ApplyGuess(guess)
		if err != nil {
			return store.Result{}, fmt.Errorf("apply guess: %w", err)
		}
		log.Debug().
			Str("gameId", g.ID).
			Int("turn", g.Turns()).
			Int("exact", fb.Exact).
			Int("colorOnly", fb.ColorOnly).
			Str("status", st.String()).
			Msg("turn scored")
		r.Renderer.Board(g.History(), g.Length(), g.MaxTurns)
	}

	r.Renderer.Outcome(g.Status(), g.Secret(), g.Turns(), who)

	res := store.Result{
		GameID:   g.ID,
		Mode:     string(mode),
		Status:   g.Status().String(),
		Turns:    g.Turns(),
		Secret:   r.Palette.Keys(g.Secret()),
		Finished: r.now(),
	}
	if quit {
		res.Status = "quit"
	}
	r.record(ctx, res)
	return res, nil
}

// record saves res to the store, if any, and logs it. A failed save is
// logged and otherwise ignored.
func (r *Runner) record(ctx context.Context, res store.Result) {
	if r.Store != nil {
		if err := r.Store.Save(ctx, res); err != nil {
			log.Warn().Err(err).Str("gameId", res.GameID).Msg("save result")
		}
	}
	log.Info().Str("gameId", res.GameID).Str("mode", res.Mode).Str("status", res.Status).Int("turns", res.Turns).Msg("game finished")
}
