package kuhn_test

import (
	"testing"

	"github.com/katalvlaran/hungarian/kuhn"
	"github.com/katalvlaran/hungarian/table"
)

// BenchmarkMatch_100x150 measures a full solve of a random 100×150 table.
// Default copy mode, so the same table can be reused across iterations.
func BenchmarkMatch_100x150(b *testing.B) {
	tab, err := table.Random(100, 150, 63, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = kuhn.Match(tab); err != nil {
			b.Fatalf("Match failed: %v", err)
		}
	}
}

// BenchmarkMatch_InPlace_100x150 isolates the destructive path; the copy
// is made outside the timed region.
func BenchmarkMatch_InPlace_100x150(b *testing.B) {
	tab, err := table.Random(100, 150, 63, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := make([][]kuhn.Cell, len(tab))
		for r := range tab {
			work[r] = append([]kuhn.Cell(nil), tab[r]...)
		}
		b.StartTimer()

		if _, err = kuhn.Match(work, kuhn.WithInPlace()); err != nil {
			b.Fatalf("Match failed: %v", err)
		}
	}
}
