package randkey

import (
	"context"
	"fmt"
	"math"
	"time"

	"randkey/internal/bigcount"
	"randkey/internal/chunk"
	"randkey/internal/domain"
	"randkey/internal/pool"

	"github.com/google/uuid"
)

// shuffleStream is the sampler stream reserved for the final permutation.
// Chunk streams are class<<48 | chunk index.
const shuffleStream = math.MaxUint64

// snapshot is the read-only state a generation works on.
type snapshot struct {
	counts  [domain.NumClasses]bigcount.Counter
	unit    bigcount.Counter
	sets    [domain.NumClasses][]byte
	sampler Sampler
	workers int
}

// Generate builds a new key with exactly the requested number of letters,
// symbols and digits in random order. The previous key is kept if
// generation fails or ctx is cancelled.
func (k *RandKey) Generate(ctx context.Context) error {
	if err := k.alphabet.CheckConsistency(k.counts); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	snap := snapshot{
		counts:  k.counts,
		unit:    k.unit,
		sampler: k.sampler,
		workers: k.workers,
	}
	for _, c := range domain.Classes {
		snap.sets[c] = k.alphabet.Bytes(c)
	}

	length, err := bigcount.Sum(snap.counts[:]...).Int()
	if err != nil {
		return fmt.Errorf("generate: key length: %w", err)
	}
	if length > k.maxLength {
		return fmt.Errorf("generate: key length %d exceeds limit %d: %w", length, k.maxLength, domain.ErrOverflow)
	}

	id := uuid.NewString()
	start := time.Now()

	// classes fill consecutive regions: letters, symbols, digits
	buf := make([]byte, length)
	var bounds [domain.NumClasses + 1]int
	for _, c := range domain.Classes {
		n, err := snap.counts[c].Int()
		if err != nil {
			return fmt.Errorf("generate: %s count: %w", c, err)
		}
		bounds[c+1] = bounds[c] + n
	}

	err = pool.Each(ctx, domain.NumClasses, domain.NumClasses, func(ctx context.Context, i int) error {
		c := domain.Classes[i]
		return snap.fill(ctx, c, buf[bounds[c]:bounds[c+1]])
	})
	if err != nil {
		k.logger.Debug("generation failed", "id", id, "error", err)
		return fmt.Errorf("generate: %w", err)
	}

	snap.sampler.Shuffle(shuffleStream, buf)

	k.key = string(buf)
	k.logger.Debug("generated key",
		"id", id,
		"length", len(buf),
		"unit", snap.unit.String(),
		"elapsed", time.Since(start),
	)
	return nil
}

// fill writes the characters of class c into dst, one chunk per task.
// Chunk i starts at i*unit.
func (s snapshot) fill(ctx context.Context, c domain.Class, dst []byte) error {
	total := s.counts[c]
	n, err := chunk.Count(total, s.unit)
	if err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	if n == 0 {
		return nil
	}

	// with more than one chunk, unit < total and so fits an int
	stride := 0
	if n > 1 {
		if stride, err = s.unit.Int(); err != nil {
			return fmt.Errorf("%s unit: %w", c, err)
		}
	}

	set := s.sets[c]
	return pool.Each(ctx, s.workers, n, func(_ context.Context, i int) error {
		piece, err := chunk.Piece(total, s.unit, i)
		if err != nil {
			return fmt.Errorf("%s chunk %d: %w", c, i, err)
		}
		size, err := piece.Int()
		if err != nil {
			return fmt.Errorf("%s chunk %d: %w", c, i, err)
		}
		idx, err := s.sampler.Indices(uint64(c)<<48|uint64(i), size, len(set))
		if err != nil {
			return fmt.Errorf("%s chunk %d: %w", c, i, err)
		}
		out := dst[i*stride : i*stride+size]
		for j, x := range idx {
			out[j] = set[x]
		}
		return nil
	})
}
