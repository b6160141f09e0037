// internal/input/prompt.go
//
// Line-oriented input source for the game.
// Responsibilities:
//   - Ask for one symbol at a time and repeat the question until the answer
//     names a palette symbol. Invalid answers are reported, never fatal.
//   - Menu choices and yes/no confirmations with the same retry loop.
//   - "q", "quit" or "exit" at any prompt ends with ErrQuit; so does EOF.
//
// Reads block until the player answers; there are no timeouts.

package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/palette"
)

// ErrQuit is returned when the player asks to quit or input ends.
var ErrQuit = errors.New("input: quit")

// Prompter reads answers from r and writes prompts to w.
type Prompter struct {
	r   *bufio.Reader
	w   io.Writer
	pal *palette.Palette
}

// New creates a prompter over r and w.
func New(r io.Reader, w io.Writer, pal *palette.Palette) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w, pal: pal}
}

func isQuit(s string) bool { return palette.IsQuitWord(s) }

// line reads one trimmed line. A final line without newline is still returned.
func (p *Prompter) line(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrQuit, err)
		}
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// ask prints prompt and reads lines until accept returns true.
// hint is printed after every rejected answer.
func (p *Prompter) ask(ctx context.Context, prompt, hint string, accept func(string) bool) error {
	for {
		fmt.Fprint(p.w, prompt)
		s, err := p.line(ctx)
		if err != nil {
			return err
		}
		if isQuit(s) {
			return ErrQuit
		}
		if accept(s) {
			return nil
		}
		log.Debug().Str("input", s).Msg("rejected answer")
		if s == "" {
			fmt.Fprintln(p.w, hint)
		} else {
			fmt.Fprintf(p.w, "%q: %s\n", s, hint)
		}
	}
}

// symbolHint lists the valid selectors, e.g. "choose 1-7 or a color name".
func (p *Prompter) symbolHint() string {
	entries := p.pal.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return "choose one of " + strings.Join(keys, " ") + " or a color name (q to quit)"
}

// Symbol asks for a single symbol.
func (p *Prompter) Symbol(ctx context.Context, prompt string) (game.Symbol, error) {
	var sym game.Symbol
	err := p.ask(ctx, prompt, p.symbolHint(), func(s string) bool {
		var ok bool
		sym, ok = p.pal.Lookup(s)
		return ok
	})
	return sym, err
}

// Code asks for length symbols, one per prompt. At the first prompt a whole
// code may be typed at once ("1274" or "red, blue, blank, green").
func (p *Prompter) Code(ctx context.Context, length int, label string) (game.Code, error) {
	code := make(game.Code, 0, length)
	for len(code) < length {
		first := len(code) == 0
		prompt := fmt.Sprintf("%s %d/%d: ", label, len(code)+1, length)
		err := p.ask(ctx, prompt, p.symbolHint(), func(s string) bool {
			if sym, ok := p.pal.Lookup(s); ok {
				code = append(code, sym)
				return true
			}
			if first {
				if c, err := p.pal.ParseCode(s); err == nil && len(c) == length {
					code = c
					return true
				}
			}
			return false
		})
		if err != nil {
			return nil, err
		}
	}
	return code, nil
}

// Choice asks the player to pick one of options by number (1-based) or by name.
// Returns the 0-based index.
func (p *Prompter) Choice(ctx context.Context, prompt string, options []string) (int, error) {
	for i, o := range options {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, o)
	}
	idx := -1
	hint := fmt.Sprintf("pick a number from 1 to %d", len(options))
	err := p.ask(ctx, prompt, hint, func(s string) bool {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			idx = n - 1
			return true
		}
		for i, o := range options {
			if s != "" && strings.EqualFold(s, o) {
				idx = i
				return true
			}
		}
		return false
	})
	return idx, err
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	var yes bool
	err := p.ask(ctx, prompt, "answer y or n", func(s string) bool {
		switch strings.ToLower(s) {
		case "y", "yes":
			yes = true
			return true
		case "n", "no":
			yes = false
			return true
		}
		return false
	})
	return yes, err
}
