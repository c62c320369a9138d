package match

import "time"

// KMP is a Knuth-Morris-Pratt engine for a single pattern.
//
// The failure table is built once at construction; scans never
// re-examine a text byte, giving O(n+m) worst-case time.
type KMP struct {
	pattern []byte
	failure []int
}

// NewKMP builds a KMP engine for the given pattern.
// Returns ErrEmptyPattern for an empty pattern. A pattern longer than a
// scanned text is not an error; such scans yield an empty result.
func NewKMP(pattern []byte) (*KMP, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &KMP{
		pattern: p,
		failure: buildFailureTable(p),
	}, nil
}

// Name implements Engine.
func (k *KMP) Name() string { return "kmp" }

// Pattern returns a copy of the engine's pattern.
func (k *KMP) Pattern() []byte {
	p := make([]byte, len(k.pattern))
	copy(p, k.pattern)
	return p
}

// Search implements Engine with a single left-to-right pass.
func (k *KMP) Search(text []byte) *Result {
	start := time.Now()
	positions := k.scanChunk(text, wholeText(len(text)))
	return newResult(k.Name(), positions, time.Since(start), 1, false)
}

// SearchParallel implements Engine. The chunk overlap is m-1 bytes, so
// resetting the matched-prefix length at each chunk start is safe: any
// occurrence beginning in a chunk's nominal range fits entirely within
// its scan range.
func (k *KMP) SearchParallel(text []byte, workers int) *Result {
	start := time.Now()
	positions, used := runParallel(text, workers, len(k.pattern)-1, k.scanChunk)
	return newResult(k.Name(), positions, time.Since(start), used, true)
}

// scanChunk runs the KMP loop over [c.start, c.scanEnd), reporting only
// matches the chunk owns. On a full match it falls back through the
// failure table so overlapping occurrences are found.
func (k *KMP) scanChunk(text []byte, c chunk) []int {
	m := len(k.pattern)
	if m > c.scanEnd-c.start {
		return nil
	}
	var out []int
	j := 0
	for i := c.start; i < c.scanEnd; i++ {
		for j > 0 && text[i] != k.pattern[j] {
			j = k.failure[j-1]
		}
		if text[i] == k.pattern[j] {
			j++
		}
		if j == m {
			if pos := i - m + 1; c.owns(pos) {
				out = append(out, pos)
			}
			j = k.failure[m-1]
		}
	}
	return out
}

// buildFailureTable computes the longest-proper-prefix-suffix table:
// table[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also a suffix of it. table[0] is always 0 and values grow by
// at most one per position. O(m) via the two-pointer extension.
func buildFailureTable(pattern []byte) []int {
	table := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table
}
