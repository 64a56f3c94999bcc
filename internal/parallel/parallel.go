// Package parallel provides fork-join execution over disjoint index ranges.
//
// For partitions [0, n) into non-overlapping chunks and runs each chunk on its
// own goroutine. It is safe without locks only when the body for index i
// writes nothing but index i and reads nothing that another index writes, as
// element-wise map and zip do. An operation with cross-index reads (a prefix
// sum, a stencil) must not use For.
package parallel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	Threshold    int  // Minimum n for parallel execution; below it For runs sequentially.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultThreshold is the element count at which For starts splitting work.
const DefaultThreshold = 10000

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		Threshold:    DefaultThreshold,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that never splits work.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, Threshold: DefaultThreshold, MinChunkSize: 1}
}

// Parallel reports whether For would split n items across goroutines.
func (c Config) Parallel(n int) bool {
	return c.Enabled && c.NumWorkers > 1 && n >= c.Threshold
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Chunks partitions [0, n) into ordered, disjoint ranges that cover every
// index exactly once. The chunk count is at most cfg.NumWorkers.
func Chunks(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}

	workers := max(cfg.NumWorkers, 1)
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	ranges := make([]Range, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		ranges = append(ranges, Range{Start: start, End: min(start+chunkSize, n)})
	}
	return ranges
}

// For executes f(i) for i in [0, n). It returns only after every call has
// completed. Falls back to sequential execution on the caller's goroutine if
// parallelism is disabled or n is below the threshold. On either path a panic
// in f reaches the caller's goroutine with its original value.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Parallel(n) {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for _, r := range Chunks(n, cfg) {
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = &chunkPanic{value: v}
				}
			}()
			for i := r.Start; i < r.End; i++ {
				f(i)
			}
			return nil
		})
	}

	// Chunk bodies only fail by panicking. Re-raise on the caller's goroutine
	// so the panic is recoverable exactly as on the sequential path.
	if err := g.Wait(); err != nil {
		panic(err.(*chunkPanic).value)
	}
}

// chunkPanic carries a value recovered from a panicking chunk.
type chunkPanic struct {
	value any
}

func (p *chunkPanic) Error() string {
	return fmt.Sprintf("parallel: chunk panicked: %v", p.value)
}
