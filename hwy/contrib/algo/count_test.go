package algo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highperf/hwy"
	"github.com/ajroetker/go-highperf/hwy/contrib/workerpool"
)

var allTags = []hwy.Tag{
	hwy.Scalar{},
	hwy.WidthTag(8),
	hwy.FixedTag128{},
	hwy.WidthTag(24),
	hwy.FixedTag256{},
	hwy.FixedTag512{},
	hwy.ScalableTag{},
	hwy.Native(),
	oddTag(7),
	oddTag(18),
	oddTag(128),
}

// oddTag reports whatever width it holds, including widths no register has.
type oddTag int

func (o oddTag) Width() int { return int(o) }
func (o oddTag) Name() string { return fmt.Sprintf("odd%d", int(o)) }

var testSizes = []int{0, 1, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 255, 511, 512, 513, 1000, 4099}

func naiveCount[T comparable](span []T, value T) int {
	n := 0
	for _, v := range span {
		if v == value {
			n++
		}
	}
	return n
}

// checkCount compares every kernel against a linear scan, with value drawn
// from a small alphabet so matches are frequent.
func checkCount[T comparable](t *testing.T, gen func(r *rand.Rand) T) {
	t.Helper()
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range testSizes {
		span := make([]T, n)
		for i := range span {
			span[i] = gen(r)
		}
		value := gen(r)
		want := naiveCount(span, value)
		for _, d := range allTags {
			got := CountWith(d, span, value)
			require.Equal(t, want, got, "%T n=%d tag=%s", value, n, d.Name())
		}
		require.Equal(t, want, Count(span, value), "%T n=%d native", value, n)
	}
}

type color uint16

type point struct{ x, y int }

func TestCountMatchesLinearScan(t *testing.T) {
	t.Run("int8", func(t *testing.T) { checkCount(t, func(r *rand.Rand) int8 { return int8(r.IntN(4) - 2) }) })
	t.Run("uint8", func(t *testing.T) { checkCount(t, func(r *rand.Rand) uint8 { return uint8(250 + r.IntN(6)) }) })
	t.Run("bool", func(t *testing.T) { checkCount(t, func(r *rand.Rand) bool { return r.IntN(3) == 0 }) })
	t.Run("int16", func(t *testing.T) { checkCount(t, func(r *rand.Rand) int16 { return int16(r.IntN(3) * 1000) }) })
	t.Run("color", func(t *testing.T) { checkCount(t, func(r *rand.Rand) color { return color(r.IntN(3)) }) })
	t.Run("int32", func(t *testing.T) { checkCount(t, func(r *rand.Rand) int32 { return int32(r.IntN(3)) - 1 }) })
	t.Run("uint32", func(t *testing.T) { checkCount(t, func(r *rand.Rand) uint32 { return math.MaxUint32 - uint32(r.IntN(3)) }) })
	t.Run("int64", func(t *testing.T) { checkCount(t, func(r *rand.Rand) int64 { return int64(r.IntN(3)) << 40 }) })
	t.Run("uint64", func(t *testing.T) { checkCount(t, func(r *rand.Rand) uint64 { return uint64(r.IntN(2)) }) })
	t.Run("int", func(t *testing.T) { checkCount(t, func(r *rand.Rand) int { return r.IntN(5) }) })
	t.Run("uintptr", func(t *testing.T) { checkCount(t, func(r *rand.Rand) uintptr { return uintptr(r.IntN(2)) }) })
	t.Run("float64", func(t *testing.T) { checkCount(t, func(r *rand.Rand) float64 { return float64(r.IntN(3)) / 2 }) })
	t.Run("string", func(t *testing.T) { checkCount(t, func(r *rand.Rand) string { return fmt.Sprint(r.IntN(3)) }) })
	t.Run("struct", func(t *testing.T) { checkCount(t, func(r *rand.Rand) point { return point{r.IntN(2), r.IntN(2)} }) })
}

func TestCountScenarios(t *testing.T) {
	for _, d := range allTags {
		assert.Equal(t, 3, CountWith(d, []int{5, 3, 5, 5, 2}, 5), d.Name())
		assert.Equal(t, 0, CountWith(d, []int{}, 42), d.Name())
		assert.Equal(t, 0, CountWith(d, []int8(nil), 0), d.Name())
	}
}

func TestCountFloatsUseEquality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	data := []float64{0, negZero, math.NaN(), 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	assert.Equal(t, NoLane, LaneKindOf[float64]())
	for _, d := range allTags {
		// -0 == 0, and NaN never equals anything.
		assert.Equal(t, 15, CountWith(d, data, 0), d.Name())
		assert.Equal(t, 0, CountWith(d, data, math.NaN()), d.Name())
	}
}

func TestCountNoOverflow(t *testing.T) {
	// All-equal data makes every lane grow by 8 per iteration, the worst
	// case for the fold interval. Sizes straddle multiples of the int8 fold
	// point for every width.
	for _, d := range []hwy.Tag{hwy.FixedTag128{}, hwy.FixedTag256{}, hwy.FixedTag512{}} {
		lanes := d.Width()
		foldElems := foldInterval[int8]() * 8 * lanes
		for _, n := range []int{foldElems - 1, foldElems, foldElems + 7*lanes, 3*foldElems + 7*lanes + 5, 100_000} {
			span := make([]byte, n)
			for i := range span {
				span[i] = 0xAB
			}
			require.Equal(t, n, CountWith(d, span, 0xAB), "tag=%s n=%d", d.Name(), n)
		}
	}

	span := make([]int16, 300_000)
	assert.Equal(t, len(span), CountWith(hwy.FixedTag512{}, span, 0))
}

func TestCountCustomTagWidths(t *testing.T) {
	zeros := make([]byte, 4096)
	for _, w := range []int{-16, 7, 12, 18, 60, 65, 128, 1 << 20} {
		d := oddTag(w)
		assert.Equal(t, len(zeros), CountWith(d, zeros, 0), "width %d", w)

		words := make([]int32, 1001)
		for i := range words {
			words[i] = int32(i % 3)
		}
		assert.Equal(t, naiveCount(words, 2), CountWith(d, words, 2), "width %d", w)
	}
}

func TestCountVectorKernels(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range testSizes {
		bytes := make([]int8, n)
		shorts := make([]int16, n)
		ints := make([]int32, n)
		longs := make([]int64, n)
		for i := range n {
			bytes[i] = int8(r.IntN(3))
			shorts[i] = int16(r.IntN(3))
			ints[i] = int32(r.IntN(3))
			longs[i] = int64(r.IntN(3))
		}
		if got, ok := countVectors(ByteLane, bytes, 1); ok {
			require.Equal(t, naiveCount(bytes, 1), got, "int8 n=%d", n)
		}
		if got, ok := countVectors(ShortLane, shorts, 1); ok {
			require.Equal(t, naiveCount(shorts, 1), got, "int16 n=%d", n)
		}
		if got, ok := countVectors(IntLane, ints, 1); ok {
			require.Equal(t, naiveCount(ints, 1), got, "int32 n=%d", n)
		}
		if got, ok := countVectors(LongLane, longs, 1); ok {
			require.Equal(t, naiveCount(longs, 1), got, "int64 n=%d", n)
		}
	}
	_, ok := countVectors(NoLane, []float64{1}, 1)
	assert.False(t, ok)
}

func TestNativeCountKeepsUpWithScalar(t *testing.T) {
	if testing.Short() {
		t.Skip("timing comparison")
	}
	data := make([]byte, 1<<20)
	scalar := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			_ = CountWith(hwy.Scalar{}, data, 7)
		}
	})
	native := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			_ = Count(data, 7)
		}
	})
	t.Logf("scalar: %s, native %s: %s", scalar, hwy.Native().Name(), native)
	assert.LessOrEqual(t, native.NsPerOp(), 2*scalar.NsPerOp(), "Native() picked a kernel slower than scalar")
}

func TestFoldInterval(t *testing.T) {
	assert.Equal(t, 15, foldInterval[int8]())
	assert.Equal(t, 4095, foldInterval[int16]())
	assert.Equal(t, math.MaxInt32/8, foldInterval[int32]())
	assert.LessOrEqual(t, 8*foldInterval[int8]()-1, math.MaxInt8)
	assert.LessOrEqual(t, 8*foldInterval[int16]()-1, math.MaxInt16)
}

func TestLaneKindOf(t *testing.T) {
	assert.Equal(t, ByteLane, LaneKindOf[int8]())
	assert.Equal(t, ByteLane, LaneKindOf[uint8]())
	assert.Equal(t, ByteLane, LaneKindOf[bool]())
	assert.Equal(t, ShortLane, LaneKindOf[int16]())
	assert.Equal(t, ShortLane, LaneKindOf[color]())
	assert.Equal(t, IntLane, LaneKindOf[uint32]())
	assert.Equal(t, LongLane, LaneKindOf[int64]())
	assert.Equal(t, NoLane, LaneKindOf[float32]())
	assert.Equal(t, NoLane, LaneKindOf[string]())
	assert.Equal(t, NoLane, LaneKindOf[point]())
	assert.Equal(t, NoLane, LaneKindOf[*int]())
	assert.Equal(t, "int16", ShortLane.String())
	assert.Equal(t, "none", NoLane.String())
}

func TestCountNoAllocs(t *testing.T) {
	data := make([]byte, 4096)
	for _, d := range allTags {
		allocs := testing.AllocsPerRun(20, func() {
			_ = CountWith(d, data, 0)
		})
		assert.Zero(t, allocs, d.Name())
	}
}

func TestParallelCount(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{0, 10, ParallelThreshold - 1, ParallelThreshold, 3*ParallelThreshold + 17} {
		span := make([]uint16, n)
		for i := range span {
			span[i] = uint16(r.IntN(4))
		}
		want := naiveCount(span, 2)
		assert.Equal(t, want, ParallelCount(pool, span, 2), "n=%d", n)
		assert.Equal(t, want, ParallelCount(nil, span, 2), "n=%d nil pool", n)
	}
}

func BenchmarkCount(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 1 << 20} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		for _, d := range []hwy.Tag{hwy.Scalar{}, hwy.FixedTag128{}, hwy.FixedTag256{}, hwy.FixedTag512{}} {
			b.Run(fmt.Sprintf("%s/%d", d.Name(), size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for b.Loop() {
					_ = CountWith(d, data, 7)
				}
			})
		}
	}
}
