// internal/palette/random.go
//
// Random code generation. Secrets default to crypto/rand; a seeded source is
// available for reproducible games and tests.

package palette

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"

	"github.com/robalobadob/mastermind/internal/game"
)

// Intn returns a uniform integer in [0, n).
type Intn func(n int) int

// CryptoIntn draws from crypto/rand.
func CryptoIntn(n int) int {
	nBig, _ := crand.Int(crand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}

// SeededIntn returns a deterministic source for the given seed.
func SeededIntn(seed uint64) Intn {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN
}

// Random returns a code of the given length with every symbol drawn uniformly,
// repetitions and blank included.
func (p *Palette) Random(length int, intn Intn) game.Code {
	if intn == nil {
		intn = CryptoIntn
	}
	code := make(game.Code, length)
	for i := range code {
		code[i] = game.Symbol(intn(len(p.entries)))
	}
	return code
}

// FromIndices converts raw indices (e.g. from the daily derivation) into a code.
// Indices outside the alphabet are reduced modulo its size.
func (p *Palette) FromIndices(idx []int) game.Code {
	code := make(game.Code, len(idx))
	n := len(p.entries)
	for i, v := range idx {
		code[i] = game.Symbol(((v % n) + n) % n)
	}
	return code
}
