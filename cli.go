// cli.go
//
// Command tree:
//   mastermind                     menu: break / make / daily, play again, tally
//   mastermind play [--mode M]     one game (breaker, maker, auto)
//   mastermind daily [--date D]    the secret of the day
//   mastermind score GUESS SECRET  print "exact color_only" for two codes
//   mastermind palette             list symbols and their selectors
//
// Settings come from the environment (see internal/config); flags override them.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/input"
	"github.com/robalobadob/mastermind/internal/palette"
	"github.com/robalobadob/mastermind/internal/play"
	"github.com/robalobadob/mastermind/internal/render"
	"github.com/robalobadob/mastermind/internal/store"
)

// exitErr carries a process exit code out of a command.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func usageErr(format string, args ...any) error {
	return &exitErr{code: 2, msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by all commands once flags are parsed.
type app struct {
	in       io.Reader
	out, err io.Writer

	cfg     config.Config
	pal     *palette.Palette
	colored bool
}

type rootFlags struct {
	color    string
	palette  string
	turns    int
	length   int
	logLevel string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, err: errOut}
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Play Mastermind in the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runner(nil).Menu(cmd.Context(), a.settings())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&f.color, "color", config.ColorAuto, "Color output: auto, always or never")
	pf.StringVar(&f.palette, "palette", "", "Palette YAML file (default: built-in six colors plus blank)")
	pf.IntVar(&f.turns, "turns", game.DefaultMaxTurns, "Guesses allowed per game")
	pf.IntVar(&f.length, "length", 4, "Symbols per code")
	pf.StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(a.newPlayCmd(), a.newDailyCmd(), a.newScoreCmd(), a.newPaletteCmd())
	return root
}

// setup merges env config with explicitly set flags, then configures logging,
// the palette and color output.
func (a *app) setup(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return usageErr("%v", err)
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = f.color
	}
	if flags.Changed("palette") {
		cfg.PaletteFile = f.palette
	}
	if flags.Changed("turns") {
		cfg.MaxTurns = f.turns
	}
	if flags.Changed("length") {
		cfg.CodeLength = f.length
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return usageErr("%v", err)
	}
	a.cfg = cfg

	if file, ok := a.out.(*os.File); ok {
		a.colored = render.ShouldColor(file, cfg.Color)
	} else {
		a.colored = cfg.Color == config.ColorAlways
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.err, NoColor: !a.colored}).With().Timestamp().Logger()

	pal, err := palette.Load(cfg.PaletteFile)
	if err != nil {
		return usageErr("%v", err)
	}
	a.pal = pal
	log.Debug().Int("symbols", pal.Len()).Int("length", cfg.CodeLength).Int("maxTurns", cfg.MaxTurns).Msg("configured")
	return nil
}

func (a *app) settings() play.Settings {
	return play.Settings{
		Length:    a.cfg.CodeLength,
		MaxTurns:  a.cfg.MaxTurns,
		DailySalt: a.cfg.DailySalt,
	}
}

func (a *app) runner(intn palette.Intn) *play.Runner {
	return &play.Runner{
		Palette:  a.pal,
		Renderer: render.New(a.pal, a.out, a.colored),
		Prompter: input.New(a.in, a.out, a.pal),
		Store:    store.NewMemoryStore(),
		Intn:     intn,
	}
}

func (a *app) newPlayCmd() *cobra.Command {
	var (
		mode string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := play.ParseMode(mode)
			if err != nil {
				return usageErr("%v", err)
			}
			var intn palette.Intn
			if cmd.Flags().Changed("seed") {
				intn = palette.SeededIntn(seed)
			}
			r := a.runner(intn)
			r.Renderer.Legend()
			_, err = r.Start(cmd.Context(), m, a.settings())
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(play.ModeBreaker), "breaker, maker, daily or auto")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for secrets and computer guesses (reproducible games)")
	return cmd
}

func (a *app) newDailyCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Play the daily challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner(nil)
			d, err := daily.ParseDate(date, time.Now())
			if err != nil {
				return usageErr("%v", err)
			}
			s := a.settings()
			s.Date = d
			r.Renderer.Legend()
			_, err = r.Start(cmd.Context(), play.ModeDaily, s)
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Challenge date, YYYY-MM-DD (default: today, UTC)")
	return cmd
}

func (a *app) newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess> <secret>",
		Short: "Score a guess against a secret and print exact and color-only counts",
		Example: `  mastermind score 1325 1234
  mastermind score "red,blue,blank,green" 1274`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, err := a.pal.ParseCode(args[0])
			if err != nil {
				return usageErr("guess: %v", err)
			}
			secret, err := a.pal.ParseCode(args[1])
			if err != nil {
				return usageErr("secret: %v", err)
			}
			fb, err := game.Score(guess, secret)
			if errors.Is(err, game.ErrInvalidInput) {
				return usageErr("%v", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d %d\n", fb.Exact, fb.ColorOnly)
			return nil
		},
	}
}

func (a *app) newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the symbols and how to select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render.New(a.pal, a.out, a.colored).Legend()
			return nil
		},
	}
}
