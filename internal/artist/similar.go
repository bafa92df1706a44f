// Package artist derives stand-in artist names that evoke a reference artist
// without naming it.
package artist

import (
	"math/rand/v2"
	"sync"

	"github.com/makeasinger/briefgen/internal/textutil"
)

// Suffixes are appended to every derived name.
var Suffixes = []string{" Nova", " Noir", " Vale", " Prism", " Luz", " Arc", " Drift", " Bloom"}

// SwapProbability is the per-vowel chance of substitution.
const SwapProbability = 0.28

var vowelSwap = map[rune]rune{
	'a': 'e', 'e': 'i', 'i': 'a', 'o': 'u', 'u': 'o',
	'A': 'E', 'E': 'I', 'I': 'A', 'O': 'U', 'U': 'O',
}

// NameGenerator produces a related but distinct variant of a name.
type NameGenerator interface {
	Similar(name string) string
}

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a generator over src. A nil src draws from process entropy.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator is NewGenerator over a PCG source seeded with seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Similar returns "" for a blank name. Otherwise the result always ends with
// one of Suffixes and never equals the normalized input.
func (g *Generator) Similar(name string) string {
	base := textutil.Normalize(name)
	if base == "" {
		return ""
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := Suffixes[g.rng.IntN(len(Suffixes))]

	src := []rune(base)
	out := make([]rune, len(src))
	changed := false
	for i, ch := range src {
		out[i] = ch
		if sub, ok := vowelSwap[ch]; ok && g.rng.Float64() < SwapProbability {
			out[i] = sub
			changed = true
		}
	}

	if !changed {
		keep := max(2, len(src)-1)
		if keep > len(src) {
			keep = len(src)
		}
		return string(src[:keep]) + suffix
	}
	return string(out) + suffix
}

// HasKnownSuffix reports whether s ends with one of Suffixes.
func HasKnownSuffix(s string) bool {
	for _, suf := range Suffixes {
		if len(s) >= len(suf) && s[len(s)-len(suf):] == suf {
			return true
		}
	}
	return false
}
