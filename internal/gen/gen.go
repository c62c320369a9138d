// Package gen produces deterministic random test data for scans and
// benchmarks. Every Generator owns its rand instance, seeded
// explicitly; there is no package-level generator state.
package gen

import (
	"math/rand"
)

// DefaultAlphabet is used when no alphabet is configured. A small
// alphabet keeps generated texts rich in near-matches.
const DefaultAlphabet = "ABCD"

// Generator produces texts and patterns over a fixed alphabet.
// Not safe for concurrent use; create one per goroutine.
type Generator struct {
	rnd      *rand.Rand
	alphabet []byte
}

// New creates a Generator with the given seed and alphabet.
// An empty alphabet falls back to DefaultAlphabet.
func New(seed int64, alphabet string) *Generator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		alphabet: []byte(alphabet),
	}
}

// Text returns a fresh random text of length n.
func (g *Generator) Text(n int) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = g.alphabet[g.rnd.Intn(len(g.alphabet))]
	}
	return text
}

// Pattern returns a fresh random pattern of length n.
func (g *Generator) Pattern(n int) []byte {
	return g.Text(n)
}

// Window copies a random length-n window out of text, which guarantees
// the returned pattern occurs in text at least once. Returns nil when
// the text is shorter than n.
func (g *Generator) Window(text []byte, n int) []byte {
	if n < 1 || n > len(text) {
		return nil
	}
	start := g.rnd.Intn(len(text) - n + 1)
	window := make([]byte, n)
	copy(window, text[start:start+n])
	return window
}

// Plant copies pattern into text at count evenly spaced offsets so a
// scan has a known floor of occurrences. Positions of other accidental
// occurrences are unaffected.
func (g *Generator) Plant(text, pattern []byte, count int) {
	if count < 1 || len(pattern) == 0 || len(pattern) > len(text) {
		return
	}
	stride := len(text) / count
	if stride < len(pattern) {
		stride = len(pattern)
	}
	for pos := 0; pos+len(pattern) <= len(text) && count > 0; pos += stride {
		copy(text[pos:], pattern)
		count--
	}
}
