package alphabet

import (
	"context"
	"fmt"
	"sync/atomic"

	"randkey/internal/bigcount"
	"randkey/internal/domain"
	"randkey/internal/pool"
)

// minSegment keeps short texts on a single goroutine.
const minSegment = 4096

// Tally counts the letters, symbols and digits of text using up to workers
// goroutines, one atomic counter per class. Any non-ASCII byte fails with
// domain.ErrInvalidChar. ASCII bytes of no class are not counted.
func Tally(text string, workers int) ([domain.NumClasses]bigcount.Counter, error) {
	var out [domain.NumClasses]bigcount.Counter
	if workers <= 0 {
		workers = pool.DefaultWorkers()
	}

	segments := (len(text) + minSegment - 1) / minSegment
	segments = min(segments, workers)
	if segments == 0 {
		return out, nil
	}
	size := (len(text) + segments - 1) / segments

	var counts [domain.NumClasses]atomic.Int64
	_, err := pool.Map(context.Background(), workers, segments, func(ctx context.Context, i int) (struct{}, error) {
		lo := i * size
		hi := min(lo+size, len(text))
		var local [domain.NumClasses]int64
		for j := lo; j < hi; j++ {
			b := text[j]
			if b >= 0x80 {
				return struct{}{}, fmt.Errorf("byte %d of key: %w", j, domain.ErrInvalidChar)
			}
			if c := domain.Classify(b); c.Valid() {
				local[c]++
			}
		}
		for c, n := range local {
			counts[c].Add(n)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return out, err
	}

	for c := range counts {
		out[c] = bigcount.FromUint64(uint64(counts[c].Load()))
	}
	return out, nil
}
