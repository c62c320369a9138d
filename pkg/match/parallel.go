package match

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// scanFunc scans one chunk of text and returns the owned match start
// offsets in scan order. It must not touch any shared mutable state.
type scanFunc func(text []byte, c chunk) []int

// runParallel fans a text out across workers, one chunk each, and joins
// the per-worker results into a single ascending offset list.
//
// Each worker appends into its own slot of buckets, so the scan phase
// has no shared mutable state and needs no locking; the errgroup wait
// is the only synchronization point. The precomputed engine structure
// must be frozen before this is called.
func runParallel(text []byte, workers, overlap int, scan scanFunc) ([]int, int) {
	workers = normalizeWorkers(workers)
	chunks := partition(len(text), workers, overlap)
	buckets := make([][]int, len(chunks))

	var g errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			buckets[i] = scan(text, c)
			return nil
		})
	}
	// Workers are infallible and run to completion; Wait is purely the
	// join barrier.
	_ = g.Wait()

	return mergeBuckets(buckets), workers
}

// mergeBuckets concatenates per-worker offset lists in worker order and
// sorts the result so callers always see ascending offsets.
func mergeBuckets(buckets [][]int) []int {
	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	merged := make([]int, 0, total)
	for _, b := range buckets {
		merged = append(merged, b...)
	}
	sort.Ints(merged)
	return merged
}
