package match

// chunk is a half-open range of text assigned to one worker.
//
// The worker scans [start, scanEnd) but only owns matches whose start
// offset lies in the nominal range [start, nominalEnd). scanEnd extends
// past nominalEnd by the overlap width so an occurrence beginning just
// before the boundary is fully visible to its owning worker.
type chunk struct {
	start      int
	nominalEnd int
	scanEnd    int
}

// owns reports whether a match starting at pos belongs to this chunk's
// worker. Exactly one worker owns any given start offset.
func (c chunk) owns(pos int) bool {
	return pos >= c.start && pos < c.nominalEnd
}

// partition divides a text of length n into at most workers chunks with
// the given overlap. Nominal chunk size is ceil(n/workers); chunks whose
// nominal start falls past the end of the text are dropped, so short
// texts may produce fewer chunks than workers.
func partition(n, workers, overlap int) []chunk {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	chunks := make([]chunk, 0, workers)
	for k := 0; k < workers; k++ {
		start := k * size
		if start >= n {
			break
		}
		nominalEnd := start + size
		if nominalEnd > n {
			nominalEnd = n
		}
		scanEnd := nominalEnd + overlap
		if scanEnd > n {
			scanEnd = n
		}
		chunks = append(chunks, chunk{start: start, nominalEnd: nominalEnd, scanEnd: scanEnd})
	}
	return chunks
}

// wholeText returns the single chunk covering the entire text, used by
// the sequential scans so both paths share one scanning loop.
func wholeText(n int) chunk {
	return chunk{start: 0, nominalEnd: n, scanEnd: n}
}
