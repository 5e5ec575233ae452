package costfield_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/gridmap"
)

// BenchmarkCompute measures a full relaxation of a 300×300 open grid with
// random terrain labels in [1,5].
func BenchmarkCompute(b *testing.B) {
	const n = 300
	rows := make([]string, n)
	for r := range rows {
		rows[r] = strings.Repeat(" ", n)
	}
	rows[0] = "A" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "B"
	m, err := gridmap.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	labels := make([][]float64, n)
	for r := range labels {
		labels[r] = make([]float64, n)
		for c := range labels[r] {
			labels[r][c] = float64(1 + rng.Intn(5))
		}
	}
	t, err := cost.NewTerrainLabels(m, labels)
	if err != nil {
		b.Fatalf("setup NewTerrainLabels failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = costfield.Compute(m, t)
	}
}
