package match

import (
	"math/rand"
	"testing"
)

func TestBuildFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"A", []int{0}},
		{"AA", []int{0, 1}},
		{"AB", []int{0, 0}},
		{"ABAB", []int{0, 0, 1, 2}},
		{"AABAACAABAA", []int{0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5}},
		{"ABABCABAB", []int{0, 0, 1, 2, 0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		got := buildFailureTable([]byte(tt.pattern))
		if !SamePositions(got, tt.want) {
			t.Errorf("buildFailureTable(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestFailureTableInvariants(t *testing.T) {
	// table[0] == 0, values bounded by position, growth at most one per
	// step.
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		pattern := randomText(rnd, 1+rnd.Intn(64), 3)
		table := buildFailureTable(pattern)
		if table[0] != 0 {
			t.Fatalf("table[0] = %d, want 0", table[0])
		}
		for i := 1; i < len(table); i++ {
			if table[i] > i {
				t.Fatalf("table[%d] = %d exceeds position", i, table[i])
			}
			if table[i] > table[i-1]+1 {
				t.Fatalf("table[%d] = %d grew by more than one from %d", i, table[i], table[i-1])
			}
		}
	}
}

func TestNewKMP_EmptyPattern(t *testing.T) {
	if _, err := NewKMP(nil); err != ErrEmptyPattern {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestKMP_Search(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"classic scenario", "ABABDABACDABABCABABABABDABACDABABCABAB", "ABABCABAB", []int{10, 29}},
		{"no match", "XYZ", "ABC", []int{}},
		{"pattern longer than text", "AB", "ABC", []int{}},
		{"single byte", "AABAA", "A", []int{0, 1, 3, 4}},
		{"match at both ends", "ABCxxABC", "ABC", []int{0, 5}},
		{"whole text", "ABC", "ABC", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := NewKMP([]byte(tt.pattern))
			if err != nil {
				t.Fatalf("NewKMP: %v", err)
			}
			res := eng.Search([]byte(tt.text))
			if !SamePositions(res.Positions, tt.want) {
				t.Errorf("positions = %v, want %v", res.Positions, tt.want)
			}
			if res.Parallel || res.Workers != 1 {
				t.Errorf("sequential result flagged parallel=%v workers=%d", res.Parallel, res.Workers)
			}
		})
	}
}

func TestKMP_OverlappingMatches(t *testing.T) {
	text := make([]byte, 256)
	for i := range text {
		text[i] = 'A'
	}
	eng, err := NewKMP([]byte("AA"))
	if err != nil {
		t.Fatalf("NewKMP: %v", err)
	}

	res := eng.Search(text)
	if len(res.Positions) != 255 {
		t.Fatalf("got %d matches, want 255", len(res.Positions))
	}
	for i, pos := range res.Positions {
		if pos != i {
			t.Fatalf("positions[%d] = %d, want %d", i, pos, i)
		}
	}
}

func TestKMP_ParallelMatchesSequential(t *testing.T) {
	text := []byte("ABABDABACDABABCABABABABDABACDABABCABAB")
	eng, err := NewKMP([]byte("ABABCABAB"))
	if err != nil {
		t.Fatalf("NewKMP: %v", err)
	}
	seq := eng.Search(text)

	for workers := 1; workers <= len(text); workers++ {
		par := eng.SearchParallel(text, workers)
		if !seq.Equal(par) {
			t.Fatalf("workers=%d: parallel %v != sequential %v", workers, par.Positions, seq.Positions)
		}
		if !par.Parallel {
			t.Fatalf("workers=%d: result not flagged parallel", workers)
		}
	}
}

func TestKMP_WorkerCountNormalized(t *testing.T) {
	eng, err := NewKMP([]byte("AB"))
	if err != nil {
		t.Fatalf("NewKMP: %v", err)
	}
	res := eng.SearchParallel([]byte("ABAB"), -3)
	if res.Workers < 1 {
		t.Fatalf("workers = %d, want >= 1", res.Workers)
	}
	if !SamePositions(res.Positions, []int{0, 2}) {
		t.Fatalf("positions = %v, want [0 2]", res.Positions)
	}
}

func TestKMP_Idempotent(t *testing.T) {
	text := []byte("ABABABAB")
	eng, err := NewKMP([]byte("ABA"))
	if err != nil {
		t.Fatalf("NewKMP: %v", err)
	}
	first := eng.Search(text)
	for i := 0; i < 5; i++ {
		if got := eng.Search(text); !first.Equal(got) {
			t.Fatalf("run %d: %v != %v", i, got.Positions, first.Positions)
		}
		if got := eng.SearchParallel(text, 4); !first.Equal(got) {
			t.Fatalf("parallel run %d: %v != %v", i, got.Positions, first.Positions)
		}
	}
}

func TestKMP_RandomEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		text := randomText(rnd, 200+rnd.Intn(300), 2)
		pattern := randomText(rnd, 1+rnd.Intn(6), 2)

		eng, err := NewKMP(pattern)
		if err != nil {
			t.Fatalf("NewKMP: %v", err)
		}
		seq := eng.Search(text)
		assertSoundComplete(t, text, pattern, seq.Positions)

		for _, workers := range []int{1, 2, 3, 7, 16} {
			par := eng.SearchParallel(text, workers)
			if !seq.Equal(par) {
				t.Fatalf("trial %d workers %d: %v != %v", trial, workers, par.Positions, seq.Positions)
			}
		}
	}
}

func BenchmarkKMP_Sequential(b *testing.B) {
	text, pattern := benchInput(1 << 20)
	eng, err := NewKMP(pattern)
	if err != nil {
		b.Fatalf("NewKMP: %v", err)
	}
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Search(text)
	}
}

func BenchmarkKMP_Parallel(b *testing.B) {
	text, pattern := benchInput(1 << 20)
	eng, err := NewKMP(pattern)
	if err != nil {
		b.Fatalf("NewKMP: %v", err)
	}
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.SearchParallel(text, 0)
	}
}
