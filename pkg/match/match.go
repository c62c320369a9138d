package match

import (
	"errors"
	"runtime"
	"time"
)

// alphabetSize is the number of distinct symbol values. Texts and
// patterns are raw bytes, so lookup tables are sized for every possible
// byte value and indexing is always in bounds.
const alphabetSize = 256

// ErrEmptyPattern is returned when an empty pattern is supplied.
// Preprocessing rejects malformed input before any scan begins.
var ErrEmptyPattern = errors.New("pattern must not be empty")

// ErrAutomatonFrozen is returned by AddPattern after the automaton has
// been built. A frozen automaton is immutable.
var ErrAutomatonFrozen = errors.New("automaton is frozen: cannot add patterns after build")

// Engine is a pattern matching engine with a precomputed structure.
//
// Implementations are immutable once constructed and safe for
// concurrent use.
type Engine interface {
	// Name returns the algorithm identifier (e.g. "kmp").
	Name() string

	// Search scans the whole text in a single pass and returns every
	// match start offset in ascending order.
	Search(text []byte) *Result

	// SearchParallel partitions the text across workers and returns the
	// same match set as Search. workers <= 0 selects the platform's
	// available parallelism.
	SearchParallel(text []byte, workers int) *Result
}

// Result holds the outcome of one scan. It is constructed fresh per
// scan and must not be mutated after it is returned.
type Result struct {
	// Algorithm is the engine identifier that produced this result.
	Algorithm string `json:"algorithm"`

	// Positions are the zero-based match start offsets, ascending.
	// Never nil.
	Positions []int `json:"positions"`

	// Elapsed is the wall-clock duration of the scan, including
	// preprocessing-free partition and merge work for parallel scans.
	Elapsed time.Duration `json:"elapsed"`

	// Workers is the number of workers used (1 for sequential scans).
	Workers int `json:"workers"`

	// Parallel reports whether the scan was partitioned across workers.
	Parallel bool `json:"parallel"`
}

// Equal reports whether two results found the exact same match
// sequence. Timing, worker count and the parallel flag are ignored;
// this is the check used to validate a parallel scan against its
// sequential baseline.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return SamePositions(r.Positions, other.Positions)
}

// SamePositions reports whether a and b are the same offset sequence.
// Order matters: both sequences are expected ascending.
func SamePositions(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// newResult assembles a Result, normalizing a nil position slice to an
// empty one so callers can range over Positions unconditionally.
func newResult(algorithm string, positions []int, elapsed time.Duration, workers int, parallel bool) *Result {
	if positions == nil {
		positions = []int{}
	}
	return &Result{
		Algorithm: algorithm,
		Positions: positions,
		Elapsed:   elapsed,
		Workers:   workers,
		Parallel:  parallel,
	}
}

// normalizeWorkers maps a zero or negative worker count to the
// platform-reported available parallelism. Never an error.
func normalizeWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
