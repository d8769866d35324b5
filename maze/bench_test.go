package maze_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mazer/maze"
)

// BenchmarkGenerate measures Kruskal carving across grid sizes.
func BenchmarkGenerate(b *testing.B) {
	for _, dims := range [][2]int{{10, 10}, {50, 50}, {200, 200}} {
		w, h := dims[0], dims[1]
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(w * h))
			for i := 0; i < b.N; i++ {
				_, _ = maze.Generate(w, h, maze.WithSeed(int64(i)))
			}
		})
	}
}
