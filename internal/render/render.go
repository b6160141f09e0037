// Package render draws the board, pegs and messages for the terminal.
//
// Symbols are mapped to display strings through the palette: a colored "0"
// (or a hole for blank) when color is on, the selector key when it is off.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/palette"
)

// Peg glyphs.
const (
	pegExact      = "●"
	pegColor      = "○"
	pegExactPlain = "B"
	pegColorPlain = "W"
)

// Renderer writes game output to w.
type Renderer struct {
	w       io.Writer
	pal     *palette.Palette
	colored bool
}

// New creates a renderer for the given palette.
func New(pal *palette.Palette, w io.Writer, colored bool) *Renderer {
	return &Renderer{w: w, pal: pal, colored: colored}
}

// ShouldColor resolves a color mode (auto|always|never) for f.
// Auto means color only on an interactive terminal without NO_COLOR set.
func ShouldColor(f *os.File, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Symbol maps one symbol to its display form.
func (r *Renderer) Symbol(sym game.Symbol) string {
	e, ok := r.pal.Entry(sym)
	if !ok {
		return "?"
	}
	if !r.colored {
		return e.Key
	}
	if e.Blank {
		return " "
	}
	c := color.New(color.Attribute(e.ANSI))
	c.EnableColor()
	return c.Sprint("0")
}

// Pegs renders feedback as exact pegs, then color-only pegs, padded to length.
func (r *Renderer) Pegs(fb game.Feedback, length int) string {
	exact, colorOnly := pegExactPlain, pegColorPlain
	if r.colored {
		hi := color.New(color.FgHiWhite, color.Bold)
		hi.EnableColor()
		exact, colorOnly = hi.Sprint(pegExact), pegColor
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(exact, fb.Exact))
	sb.WriteString(strings.Repeat(colorOnly, fb.ColorOnly))
	if pad := length - fb.Exact - fb.ColorOnly; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

// rule is the horizontal line framing rows: one dash per visible column.
func rule(length int) string { return strings.Repeat("-", 3*length+2) }

// Row renders one board row: |s|s|s|s|pegs|
func (r *Renderer) Row(code game.Code, fb game.Feedback) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, s := range code {
		sb.WriteString(r.Symbol(s))
		sb.WriteString("|")
	}
	sb.WriteString(r.Pegs(fb, len(code)))
	sb.WriteString("|")
	return sb.String()
}

// Board writes every turn played so far followed by the turn counter.
func (r *Renderer) Board(history []game.Turn, length, maxTurns int) {
	fmt.Fprintln(r.w, rule(length))
	for _, t := range history {
		fmt.Fprintln(r.w, r.Row(t.Guess, t.Feedback))
		fmt.Fprintln(r.w, rule(length))
	}
	fmt.Fprintf(r.w, "turn %d/%d\n", len(history), maxTurns)
}

// Code writes a single code framed like a board row with empty pegs.
func (r *Renderer) Code(code game.Code) {
	fmt.Fprintln(r.w, rule(len(code)))
	fmt.Fprintln(r.w, r.Row(code, game.Feedback{}))
	fmt.Fprintln(r.w, rule(len(code)))
}

// Banner prints the title.
func (r *Renderer) Banner() {
	p := termenv.Ascii
	if r.colored {
		p = termenv.ColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI
		}
	}
	title := p.String(" M A S T E R M I N D ").Foreground(p.Color("#f472b6")).Bold()
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, title)
	fmt.Fprintln(r.w)
}

// Legend lists the palette: selector key, name and peg.
func (r *Renderer) Legend() {
	for i, e := range r.pal.Entries() {
		fmt.Fprintf(r.w, "  %-3s %-12s %s\n", e.Key, e.Name, r.Symbol(game.Symbol(i)))
	}
	if r.colored {
		fmt.Fprintf(r.w, "  pegs: %s exact  %s color only\n", pegExact, pegColor)
	} else {
		fmt.Fprintf(r.w, "  pegs: %s exact  %s color only\n", pegExactPlain, pegColorPlain)
	}
}

// Outcome announces the end of a game. breaker names who was guessing.
func (r *Renderer) Outcome(status game.Status, secret game.Code, turns int, breaker string) {
	switch status {
	case game.StatusWon:
		fmt.Fprintf(r.w, "%s cracked the code in %d %s!\n", breaker, turns, plural(turns, "turn", "turns"))
	case game.StatusLost:
		fmt.Fprintf(r.w, "%s ran out of turns. The code was:\n", breaker)
		r.Code(secret)
	default:
		fmt.Fprintln(r.w, "Game abandoned. The code was:")
		r.Code(secret)
	}
}

// Printf writes a free-form message.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
