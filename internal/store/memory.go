// internal/store/memory.go
//
// In-memory record of finished games for the current process.
// Used by the menu loop to print a tally; nothing is written to disk.
//
// Characteristics:
//   - Results are kept in insertion order and indexed by game ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("store: not found")

// Result summarises one finished (or abandoned) game.
type Result struct {
	GameID   string
	Mode     string // "breaker" | "maker" | "daily" | "auto"
	Status   string // "won" | "lost" | "quit"
	Turns    int
	Secret   string // compact key form, e.g. "1274"
	Finished time.Time
}

// Tally counts results by outcome.
type Tally struct {
	Played int
	Won    int
	Lost   int
	Quit   int
}

// Store defines the interface for recording results.
type Store interface {
	// Save records or replaces a result keyed by GameID.
	Save(ctx context.Context, r Result) error

	// Get retrieves a result by game ID.
	Get(ctx context.Context, id string) (Result, error)

	// List returns all results, oldest first.
	List(ctx context.Context) ([]Result, error)
}

// memory is an in-memory Store implementation.
type memory struct {
	mu      sync.RWMutex // guards order and results
	order   []string     // game IDs in insertion order
	results map[string]Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Save adds or updates the result.
func (m *memory) Save(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.GameID]; !ok {
		m.order = append(m.order, r.GameID)
	}
	m.results[r.GameID] = r
	return nil
}

// Get looks up a result by game ID.
func (m *memory) Get(ctx context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return Result{}, ErrNotFound
}

// List returns results in the order they were first saved.
func (m *memory) List(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.results[id])
	}
	return out, nil
}

// Summarize tallies the results held by s.
func Summarize(ctx context.Context, s Store) (Tally, error) {
	list, err := s.List(ctx)
	if err != nil {
		return Tally{}, err
	}
	var t Tally
	for _, r := range list {
		t.Played++
		switch r.Status {
		case "won":
			t.Won++
		case "lost":
			t.Lost++
		default:
			t.Quit++
		}
	}
	return t, nil
}
