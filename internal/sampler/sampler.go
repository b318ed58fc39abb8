package sampler

import (
	"fmt"
	"math/rand/v2"

	"randkey/internal/domain"
)

// Sampler draws uniform indices and shuffles byte buffers.
// Work is split into numbered streams so that tasks running in parallel
// each get their own generator.
type Sampler struct {
	seed   uint64
	seeded bool
}

// New creates a Sampler whose streams are freshly seeded on every call.
func New() *Sampler {
	return &Sampler{}
}

// NewSeeded creates a Sampler whose stream id always maps to the same
// sequence for the given seed.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{seed: seed, seeded: true}
}

func (s *Sampler) stream(id uint64) *rand.Rand {
	if s.seeded {
		return rand.New(rand.NewPCG(s.seed, id))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Indices returns count values drawn independently and uniformly from [0, size).
func (s *Sampler) Indices(stream uint64, count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("sample %d indices: %w", count, domain.ErrInvalidNumber)
	}
	if count == 0 {
		return []int{}, nil
	}
	if size <= 0 {
		return nil, fmt.Errorf("sample %d indices from empty set: %w", count, domain.ErrMissingCharacterClass)
	}

	r := s.stream(stream)
	out := make([]int, count)
	for i := range out {
		out[i] = r.IntN(size)
	}
	return out, nil
}

// Shuffle permutes b uniformly in place (Fisher-Yates).
func (s *Sampler) Shuffle(stream uint64, b []byte) {
	r := s.stream(stream)
	for i := len(b) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}
