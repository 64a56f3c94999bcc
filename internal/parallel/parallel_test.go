package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4

	n := 50000
	visits := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&visits[i], 1)
	}, cfg)

	for i, v := range visits {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(100, func(i int) {
		order = append(order, i) // No synchronization: must run on the caller's goroutine.
	}, cfg)

	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestFor_BelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	assert.False(t, cfg.Parallel(cfg.Threshold-1))
	assert.True(t, cfg.Parallel(cfg.Threshold))

	var counter int64
	n := cfg.Threshold - 1
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)
	assert.Equal(t, int64(n), counter)
}

func TestFor_Zero(t *testing.T) {
	called := false
	For(0, func(_ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestFor_PanicReachesCaller(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, Threshold: 100, MinChunkSize: 1}
	require.True(t, cfg.Parallel(1000))

	var completed int64
	assert.PanicsWithValue(t, "bad index", func() {
		For(1000, func(i int) {
			if i == 777 {
				panic("bad index")
			}
			atomic.AddInt64(&completed, 1)
		}, cfg)
	})

	// Sequential path panics with the same value.
	assert.PanicsWithValue(t, "bad index", func() {
		For(1000, func(i int) {
			if i == 777 {
				panic("bad index")
			}
		}, Sequential())
	})

	// For waits for every chunk before re-raising: the three other chunks
	// complete, the failing one stops at index 777.
	assert.Equal(t, int64(777), atomic.LoadInt64(&completed))
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		minSize int
	}{
		{"even", 100, 4, 1},
		{"uneven", 10007, 8, 64},
		{"more workers than items", 5, 16, 1},
		{"min chunk dominates", 1000, 100, 256},
		{"single worker", 77, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Enabled: true, NumWorkers: tt.workers, MinChunkSize: tt.minSize}
			ranges := Chunks(tt.n, cfg)

			require.NotEmpty(t, ranges)
			assert.LessOrEqual(t, len(ranges), tt.workers)
			assert.Equal(t, 0, ranges[0].Start)
			assert.Equal(t, tt.n, ranges[len(ranges)-1].End)

			total := 0
			for i, r := range ranges {
				assert.Positive(t, r.Len())
				if i > 0 {
					assert.Equal(t, ranges[i-1].End, r.Start, "ranges must be contiguous and disjoint")
				}
				total += r.Len()
			}
			assert.Equal(t, tt.n, total)
		})
	}

	assert.Nil(t, Chunks(0, DefaultConfig()))
}

func TestSequentialConfig(t *testing.T) {
	cfg := Sequential()
	assert.False(t, cfg.Parallel(1_000_000))
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 20
	data := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, func(i int) {
				data[i] = data[i]*0.5 + 1
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := Sequential()
		for i := 0; i < b.N; i++ {
			For(n, func(i int) {
				data[i] = data[i]*0.5 + 1
			}, cfgSeq)
		}
	})
}
