//go:build amd64 && !purego

package avx2

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/generic"
	"github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
	"github.com/cwbudde/algo-stencil/internal/cpu"
)

func randRow(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*4 - 2
	}
	return out
}

func TestCorrelateRow_MatchesGenericBitExact(t *testing.T) {
	if !cpu.DetectFeatures().HasAVX2 {
		t.Skip("AVX2 not available")
	}
	rng := rand.New(rand.NewSource(11))
	taps := registry.Taps{0.0625, -0.125, 0.0625, -0.125, 1.75, -0.125, 0.3, 0.2, -0.7}

	for _, n := range []int{8, 16, 24, 64, 512} {
		t.Run("n="+strconv.Itoa(n), func(t *testing.T) {
			r0, r1, r2 := randRow(rng, n+2), randRow(rng, n+2), randRow(rng, n+2)
			got := make([]float32, n)
			want := make([]float32, n)

			CorrelateRow(got, r0, r1, r2, &taps, n)
			generic.CorrelateRow(want, r0, r1, r2, &taps, n)

			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("x=%d: got %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestCorrelateRow_ZeroLength(t *testing.T) {
	var taps registry.Taps
	CorrelateRow(nil, make([]float32, 2), make([]float32, 2), make([]float32, 2), &taps, 0)
}

func TestCorrelateRow_DoesNotWritePastN(t *testing.T) {
	if !cpu.DetectFeatures().HasAVX2 {
		t.Skip("AVX2 not available")
	}
	taps := registry.Taps{1, 1, 1, 1, 1, 1, 1, 1, 1}
	row := make([]float32, 30)
	for i := range row {
		row[i] = 2
	}
	dst := make([]float32, 24)
	for i := range dst {
		dst[i] = -3
	}

	CorrelateRow(dst, row, row, row, &taps, 16)

	for i := range 16 {
		if dst[i] != 18 {
			t.Fatalf("dst[%d] = %v, want 18", i, dst[i])
		}
	}
	for i := 16; i < len(dst); i++ {
		if dst[i] != -3 {
			t.Fatalf("dst[%d] = %v, must be untouched", i, dst[i])
		}
	}
}

func TestCopyFloats_MatchesBuiltin(t *testing.T) {
	if !cpu.DetectFeatures().HasAVX2 {
		t.Skip("AVX2 not available")
	}
	for _, n := range []int{0, 1, 7, 8, 9, 16, 31, 33, 1000} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i)*0.5 - 3
		}
		dst := make([]float32, n+1)
		dst[n] = 42

		CopyFloats(dst, src, n)

		for i := range src {
			if dst[i] != src[i] {
				t.Fatalf("n=%d: dst[%d] = %v, want %v", n, i, dst[i], src[i])
			}
		}
		if dst[n] != 42 {
			t.Fatalf("n=%d: wrote past count", n)
		}
	}
}

func TestCorrelateRow_Panics(t *testing.T) {
	var taps registry.Taps
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short row")
		}
	}()
	CorrelateRow(make([]float32, 8), make([]float32, 9), make([]float32, 10), make([]float32, 10), &taps, 8)
}

func BenchmarkCorrelateRow_AVX2Kernel(b *testing.B) {
	if !cpu.DetectFeatures().HasAVX2 {
		b.Skip("AVX2 not available")
	}
	taps := registry.Taps{1, 2, 1, 2, 4, 2, 1, 2, 1}
	for _, n := range []int{64, 1024, 4096} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			r0, r1, r2 := randRow(rng, n+2), randRow(rng, n+2), randRow(rng, n+2)
			dst := make([]float32, n)
			b.SetBytes(int64(n * 4))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				CorrelateRow(dst, r0, r1, r2, &taps, n)
			}
		})
	}
}
