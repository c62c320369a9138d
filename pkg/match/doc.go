// Package match provides exact pattern matching over byte texts using
// three classical algorithms, each with a sequential and a data-parallel
// scan:
//
//   - [KMP]: Knuth-Morris-Pratt single-pattern search
//   - [BoyerMoore]: Boyer-Moore single-pattern search (bad-character rule)
//   - [AhoCorasick]: multi-pattern search over a failure-linked automaton
//
// # Architecture
//
// Every engine precomputes its structure once (failure table,
// bad-character table, or automaton) and then scans without mutating it,
// so a built engine is safe for concurrent use:
//
//	┌──────────────────────────────────────────────────────────┐
//	│                        Engine                            │
//	│  ┌──────────┐   ┌──────────────┐   ┌─────────────────┐   │
//	│  │   KMP    │   │  BoyerMoore  │   │   AhoCorasick   │   │
//	│  │ failure  │   │ bad-char     │   │ trie + failure  │   │
//	│  │ table    │   │ table        │   │ links           │   │
//	│  └──────────┘   └──────────────┘   └─────────────────┘   │
//	│        └──────────────┬──────────────────┘               │
//	│            chunk partitioner + fan-out/join              │
//	└──────────────────────────────────────────────────────────┘
//
// The parallel scan partitions the text into one chunk per worker. Each
// chunk is extended past its nominal end by patternLength-1 bytes (the
// longest pattern for Aho-Corasick) so an occurrence straddling a chunk
// boundary is fully visible to the worker that owns its start offset.
// A worker reports an occurrence only when its start offset falls inside
// the worker's nominal, non-overlapping range, so every occurrence is
// reported by exactly one worker and the merged result equals the
// sequential one.
//
// # Usage
//
//	eng, err := match.NewKMP([]byte("ABABCABAB"))
//	if err != nil {
//	    return err
//	}
//	seq := eng.Search(text)
//	par := eng.SearchParallel(text, 8)
//	fmt.Println(seq.Equal(par)) // true
//
// Multi-pattern search registers patterns before scanning:
//
//	ac := match.NewAhoCorasick()
//	_ = ac.AddPattern([]byte("he"))
//	_ = ac.AddPattern([]byte("she"))
//	ac.Build()
//	res := ac.Search(text)
//
// # Overlap semantics
//
// All engines report overlapping occurrences: searching "AA" in "AAAA"
// yields offsets 0, 1 and 2.
//
// # Thread safety
//
// Engines are immutable after construction (after Build for
// AhoCorasick) and safe for concurrent use. Results are never shared
// between scans.
package match
