// internal/palette/palette.go
//
// Provides the symbol alphabet for the game engine.
//
// Responsibilities:
//   - Load the palette from a YAML file, or fall back to the embedded default.
//   - Map player selectors (key or name) to game symbols.
//   - Supply random codes for secrets and for the computer guesser.
//
// Palette file:
//   symbols:
//     - name: red      # display name, unique
//       key: "1"       # selector typed by the player, unique
//       ansi: 31       # foreground color code used by the renderer
//     - name: blank
//       key: "7"
//       blank: true    # rendered as an empty hole
//
// Constraints:
//   • At least two symbols.
//   • Names and keys are non-empty and unique (case-insensitive).
//   • Keys are a single character, so a code always has a compact form.
//   • No selector may be a quit word (q, quit, exit).
//   • Non-blank symbols carry an ansi code in 30-37 or 90-97.
//   • Symbol values are the 0-based positions in the list.

package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/mastermind/internal/game"
)

//go:embed default.yaml
var embeddedDefault []byte

var (
	// ErrInvalidPalette is returned when a palette file fails validation.
	ErrInvalidPalette = errors.New("palette: invalid")
	// ErrUnknownSymbol is returned when a selector matches no symbol.
	ErrUnknownSymbol = errors.New("palette: unknown symbol")
)

// Entry describes one symbol of the alphabet.
type Entry struct {
	Name  string `yaml:"name"`
	Key   string `yaml:"key"`
	ANSI  int    `yaml:"ansi"`
	Blank bool   `yaml:"blank"`
}

// Palette is an ordered, validated alphabet.
type Palette struct {
	entries []Entry
	lookup  map[string]game.Symbol // lowercased key and name → symbol
}

// QuitWords are the inputs a prompt treats as a request to leave the game.
// They are reserved and cannot be used as selectors.
var QuitWords = []string{"q", "quit", "exit"}

// IsQuitWord reports whether s, ignoring case and surrounding space, is a quit word.
func IsQuitWord(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range QuitWords {
		if s == w {
			return true
		}
	}
	return false
}

type file struct {
	Symbols []Entry `yaml:"symbols"`
}

var (
	defaultOnce sync.Once
	defaultPal  *Palette
	defaultErr  error
)

// Default returns the embedded palette (six colors plus blank).
// Parsed once.
func Default() (*Palette, error) {
	defaultOnce.Do(func() {
		defaultPal, defaultErr = Parse(embeddedDefault)
	})
	return defaultPal, defaultErr
}

// Load reads a palette from path, or returns the embedded default when path is empty.
func Load(path string) (*Palette, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: read %s: %w", path, err)
	}
	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML palette document.
func Parse(b []byte) (*Palette, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	return New(f.Symbols)
}

// New validates entries and builds the selector index.
func New(entries []Entry) (*Palette, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidPalette, len(entries))
	}
	p := &Palette{
		entries: make([]Entry, len(entries)),
		lookup:  make(map[string]game.Symbol, 2*len(entries)),
	}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.Key = strings.TrimSpace(e.Key)
		if e.Name == "" || e.Key == "" {
			return nil, fmt.Errorf("%w: symbol %d needs a name and a key", ErrInvalidPalette, i)
		}
		if utf8.RuneCountInString(e.Key) != 1 {
			return nil, fmt.Errorf("%w: key %q of %s must be a single character", ErrInvalidPalette, e.Key, e.Name)
		}
		if !e.Blank && !validANSI(e.ANSI) {
			return nil, fmt.Errorf("%w: %s needs an ansi color in 30-37 or 90-97, got %d", ErrInvalidPalette, e.Name, e.ANSI)
		}
		for _, sel := range []string{e.Key, e.Name} {
			sel = strings.ToLower(sel)
			if IsQuitWord(sel) {
				return nil, fmt.Errorf("%w: selector %q is reserved", ErrInvalidPalette, sel)
			}
			if prev, dup := p.lookup[sel]; dup && prev != game.Symbol(i) {
				return nil, fmt.Errorf("%w: selector %q used twice", ErrInvalidPalette, sel)
			}
			p.lookup[sel] = game.Symbol(i)
		}
		p.entries[i] = e
	}
	return p, nil
}

func validANSI(c int) bool {
	return (c >= 30 && c <= 37) || (c >= 90 && c <= 97)
}

// Len is the alphabet size.
func (p *Palette) Len() int { return len(p.entries) }

// Entry returns the description of sym. ok is false for out-of-range symbols.
func (p *Palette) Entry(sym game.Symbol) (Entry, bool) {
	if sym < 0 || int(sym) >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[sym], true
}

// Entries returns a copy of the palette entries in symbol order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Symbols lists every symbol in order.
func (p *Palette) Symbols() []game.Symbol {
	out := make([]game.Symbol, len(p.entries))
	for i := range out {
		out[i] = game.Symbol(i)
	}
	return out
}

// Lookup resolves a selector (key or name, case-insensitive) to a symbol.
func (p *Palette) Lookup(selector string) (game.Symbol, bool) {
	s, ok := p.lookup[strings.ToLower(strings.TrimSpace(selector))]
	return s, ok
}

// ParseCode reads a code from player input. Commas separate symbols when
// present; within each part, whitespace-separated words are matched
// greedily against names and keys, longest first, so "light blue" is one
// symbol. A word that matches nothing is read as a compact run of keys,
// which makes "1274", "red, 2 blank 4" and "red light blue blank green"
// all valid.
func (p *Palette) ParseCode(s string) (game.Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty code", ErrUnknownSymbol)
	}

	var code game.Code
	for _, part := range strings.Split(s, ",") {
		words := strings.Fields(part)
		for i := 0; i < len(words); {
			n := p.matchWords(words[i:])
			if n > 0 {
				sym, _ := p.Lookup(strings.Join(words[i:i+n], " "))
				code = append(code, sym)
				i += n
				continue
			}
			run, err := p.parseKeys(words[i])
			if err != nil {
				return nil, err
			}
			code = append(code, run...)
			i++
		}
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: empty code", ErrUnknownSymbol)
	}
	return code, nil
}

// matchWords returns how many leading words form the longest selector, or 0.
func (p *Palette) matchWords(words []string) int {
	for n := len(words); n > 0; n-- {
		if _, ok := p.Lookup(strings.Join(words[:n], " ")); ok {
			return n
		}
	}
	return 0
}

// parseKeys reads w as a run of single-character keys.
func (p *Palette) parseKeys(w string) (game.Code, error) {
	code := make(game.Code, 0, len(w))
	for _, r := range w {
		sym, ok := p.Lookup(string(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, w)
		}
		code = append(code, sym)
	}
	return code, nil
}

// Keys renders code as its compact selector form, e.g. "1274".
func (p *Palette) Keys(code game.Code) string {
	var sb strings.Builder
	for _, s := range code {
		if e, ok := p.Entry(s); ok {
			sb.WriteString(e.Key)
		} else {
			sb.WriteString("?")
		}
	}
	return sb.String()
}
