package match

import "time"

// badCharAbsent marks alphabet symbols that do not occur in the pattern.
const badCharAbsent = -1

// BoyerMoore is a Boyer-Moore engine for a single pattern using the
// bad-character heuristic. Average-case sub-linear thanks to large
// skips; worst case O(n*m).
type BoyerMoore struct {
	pattern []byte
	badChar [alphabetSize]int
}

// NewBoyerMoore builds a Boyer-Moore engine for the given pattern.
// Returns ErrEmptyPattern for an empty pattern.
func NewBoyerMoore(pattern []byte) (*BoyerMoore, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	bm := &BoyerMoore{pattern: make([]byte, len(pattern))}
	copy(bm.pattern, pattern)
	// Rightmost occurrence per symbol: later positions overwrite earlier
	// ones.
	for i := range bm.badChar {
		bm.badChar[i] = badCharAbsent
	}
	for i, b := range bm.pattern {
		bm.badChar[b] = i
	}
	return bm, nil
}

// Name implements Engine.
func (b *BoyerMoore) Name() string { return "boyer-moore" }

// Pattern returns a copy of the engine's pattern.
func (b *BoyerMoore) Pattern() []byte {
	p := make([]byte, len(b.pattern))
	copy(p, b.pattern)
	return p
}

// Search implements Engine.
func (b *BoyerMoore) Search(text []byte) *Result {
	start := time.Now()
	positions := b.scanChunk(text, wholeText(len(text)))
	return newResult(b.Name(), positions, time.Since(start), 1, false)
}

// SearchParallel implements Engine. Chunk overlap is m-1 bytes, same as
// KMP; each worker aligns the pattern freshly at its chunk's nominal
// start.
func (b *BoyerMoore) SearchParallel(text []byte, workers int) *Result {
	start := time.Now()
	positions, used := runParallel(text, workers, len(b.pattern)-1, b.scanChunk)
	return newResult(b.Name(), positions, time.Since(start), used, true)
}

// scanChunk aligns the pattern at successive offsets of
// [c.start, c.scanEnd) and compares right to left. On a mismatch at
// pattern position j the alignment shifts by j minus the rightmost
// occurrence of the mismatching text byte, clamped to at least 1 (the
// raw shift can be zero or negative when that byte occurs only to the
// right of j). On a match the alignment advances by one so overlapping
// occurrences are found.
func (b *BoyerMoore) scanChunk(text []byte, c chunk) []int {
	m := len(b.pattern)
	var out []int
	i := c.start
	for i+m <= c.scanEnd {
		j := m - 1
		for j >= 0 && b.pattern[j] == text[i+j] {
			j--
		}
		if j < 0 {
			if c.owns(i) {
				out = append(out, i)
			}
			i++
			continue
		}
		shift := j - b.badChar[text[i+j]]
		if shift < 1 {
			shift = 1
		}
		i += shift
	}
	return out
}
