package match

import (
	"sort"
	"time"
)

// acNode is one automaton state. Children are a fixed 256-slot array
// indexed by byte value (acNone when absent) rather than a map, so
// traversal does no hashing or allocation. outputs holds the indices of
// every pattern that terminates at this state or at a state reachable
// through its failure chain.
type acNode struct {
	children [alphabetSize]int32
	fail     int32
	outputs  []int32
}

// acNone marks an absent child transition.
const acNone = int32(-1)

// AhoCorasick is a multi-pattern engine. Patterns are registered with
// AddPattern and the automaton is frozen by Build; scanning before
// Build builds implicitly. A frozen automaton is immutable and safe for
// concurrent read-only traversal, which is what makes the parallel scan
// lock-free.
type AhoCorasick struct {
	nodes    []acNode
	patterns [][]byte
	maxLen   int
	built    bool
}

// NewAhoCorasick creates an automaton containing only the root state.
// An automaton with no patterns is valid and matches nothing.
func NewAhoCorasick() *AhoCorasick {
	ac := &AhoCorasick{}
	ac.nodes = append(ac.nodes, newACNode())
	return ac
}

func newACNode() acNode {
	n := acNode{}
	for i := range n.children {
		n.children[i] = acNone
	}
	return n
}

// AddPattern registers a pattern. Patterns are indexed by insertion
// order and duplicates are kept as separate entries. Returns
// ErrEmptyPattern for an empty pattern and ErrAutomatonFrozen once
// Build has run.
func (a *AhoCorasick) AddPattern(pattern []byte) error {
	if a.built {
		return ErrAutomatonFrozen
	}
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	p := make([]byte, len(pattern))
	copy(p, pattern)

	cur := int32(0)
	for _, b := range p {
		next := a.nodes[cur].children[b]
		if next == acNone {
			next = int32(len(a.nodes))
			a.nodes = append(a.nodes, newACNode())
			a.nodes[cur].children[b] = next
		}
		cur = next
	}
	a.nodes[cur].outputs = append(a.nodes[cur].outputs, int32(len(a.patterns)))
	a.patterns = append(a.patterns, p)
	if len(p) > a.maxLen {
		a.maxLen = len(p)
	}
	return nil
}

// PatternCount returns the number of registered patterns.
func (a *AhoCorasick) PatternCount() int { return len(a.patterns) }

// Built reports whether the automaton has been frozen.
func (a *AhoCorasick) Built() bool { return a.built }

// Build computes failure links breadth-first and propagates output sets
// down the failure chains, then freezes the automaton. Calling Build
// again is a no-op.
func (a *AhoCorasick) Build() {
	if a.built {
		return
	}

	queue := make([]int32, 0, len(a.nodes))
	for c := 0; c < alphabetSize; c++ {
		if child := a.nodes[0].children[c]; child != acNone {
			// Depth-1 states fail to the root.
			a.nodes[child].fail = 0
			queue = append(queue, child)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for c := 0; c < alphabetSize; c++ {
			child := a.nodes[cur].children[c]
			if child == acNone {
				continue
			}
			// Walk the parent's failure chain until a state with a
			// c-transition turns up; the root terminates the chain.
			f := a.nodes[cur].fail
			for f != 0 && a.nodes[f].children[c] == acNone {
				f = a.nodes[f].fail
			}
			target := a.nodes[f].children[c]
			if target == acNone || target == child {
				target = 0
			}
			a.nodes[child].fail = target
			// Suffix matches reachable via the failure target surface
			// here too.
			a.nodes[child].outputs = append(a.nodes[child].outputs, a.nodes[target].outputs...)
			queue = append(queue, child)
		}
	}

	a.built = true
}

// Name implements Engine.
func (a *AhoCorasick) Name() string { return "aho-corasick" }

// Search implements Engine. Builds the automaton if the caller has not.
func (a *AhoCorasick) Search(text []byte) *Result {
	a.Build()
	start := time.Now()
	positions := a.scanChunk(text, wholeText(len(text)))
	// Output sets at one text position emit longer patterns first, so
	// per-chunk order is not globally ascending.
	sort.Ints(positions)
	return newResult(a.Name(), positions, time.Since(start), 1, false)
}

// SearchParallel implements Engine. The chunk overlap is
// maxPatternLen-1 bytes since any registered pattern could straddle a
// boundary; every worker traverses the shared frozen automaton from the
// root.
func (a *AhoCorasick) SearchParallel(text []byte, workers int) *Result {
	a.Build()
	overlap := a.maxLen - 1
	if overlap < 0 {
		overlap = 0
	}
	start := time.Now()
	positions, used := runParallel(text, workers, overlap, a.scanChunk)
	return newResult(a.Name(), positions, time.Since(start), used, true)
}

// scanChunk consumes [c.start, c.scanEnd) byte by byte, following
// failure links on missing transitions (amortized O(1) per byte), and
// emits one offset per output entry at each state: the match starts at
// position-len(pattern)+1.
func (a *AhoCorasick) scanChunk(text []byte, c chunk) []int {
	if a.maxLen == 0 {
		return nil
	}
	var out []int
	state := int32(0)
	for i := c.start; i < c.scanEnd; i++ {
		b := text[i]
		for state != 0 && a.nodes[state].children[b] == acNone {
			state = a.nodes[state].fail
		}
		if next := a.nodes[state].children[b]; next != acNone {
			state = next
		}
		for _, p := range a.nodes[state].outputs {
			if pos := i - len(a.patterns[p]) + 1; c.owns(pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}
