package play

import (
	"context"
	"errors"

	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/store"
)

var menu = []struct {
	label string
	mode  Mode
}{
	{"Break the code", ModeBreaker},
	{"Make the code", ModeMaker},
	{"Daily challenge", ModeDaily},
	{"Quit", ""},
}

// Menu shows the main menu and plays games until the player quits,
// then prints the tally for the session.
func (r *Runner) Menu(ctx context.Context, s Settings) error {
	r.Renderer.Banner()
	r.Renderer.Legend()

	labels := make([]string, len(menu))
	for i, m := range menu {
		labels[i] = m.label
	}

	for {
		r.Renderer.Printf("\n")
		idx, err := r.Prompter.Choice(ctx, "> ", labels)
		if errors.Is(err, input.ErrQuit) {
			break
		}
		if err != nil {
			return err
		}
		if menu[idx].mode == "" {
			break
		}
		if _, err := r.Start(ctx, menu[idx].mode, s); err != nil {
			return err
		}

		again, err := r.Prompter.Confirm(ctx, "Play again? (y/n) ")
		if errors.Is(err, input.ErrQuit) {
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	return r.PrintTally(ctx)
}

// PrintTally writes the session summary.
func (r *Runner) PrintTally(ctx context.Context) error {
	if r.Store == nil {
		return nil
	}
	t, err := store.Summarize(ctx, r.Store)
	if err != nil {
		return err
	}
	if t.Played == 0 {
		return nil
	}
	r.Renderer.Printf("Games played: %d  won: %d  lost: %d  quit: %d\n", t.Played, t.Won, t.Lost, t.Quit)
	return nil
}
