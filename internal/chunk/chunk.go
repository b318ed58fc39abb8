// Package chunk splits large counts into bounded pieces.
package chunk

import (
	"fmt"
	"iter"

	"randkey/internal/bigcount"
	"randkey/internal/domain"
)

// Divide yields unit while the remaining total is at least unit, then the
// nonzero remainder. A zero total yields nothing, as does a zero unit.
// Pieces are produced lazily so huge totals are never materialized.
func Divide(total, unit bigcount.Counter) iter.Seq[bigcount.Counter] {
	return func(yield func(bigcount.Counter) bool) {
		if unit.IsZero() {
			return
		}
		rest := total
		for rest.Cmp(unit) >= 0 {
			if !yield(unit) {
				return
			}
			next, err := bigcount.Sub(rest, unit)
			if err != nil {
				// unreachable: rest >= unit
				return
			}
			rest = next
		}
		if !rest.IsZero() {
			yield(rest)
		}
	}
}

// Count returns the number of pieces Divide yields for total and unit.
func Count(total, unit bigcount.Counter) (int, error) {
	if unit.IsZero() {
		return 0, fmt.Errorf("chunk count: %w", domain.ErrInvalidUnit)
	}
	n, err := bigcount.CeilDiv(total, unit)
	if err != nil {
		return 0, err
	}
	return n.Int()
}

// Piece returns the size of piece i of Divide(total, unit) without walking
// the pieces before it: unit for every piece but the last, which holds the
// remainder.
func Piece(total, unit bigcount.Counter, i int) (bigcount.Counter, error) {
	if unit.IsZero() {
		return bigcount.Counter{}, fmt.Errorf("chunk piece: %w", domain.ErrInvalidUnit)
	}
	if i < 0 {
		return bigcount.Counter{}, fmt.Errorf("chunk piece %d: %w", i, domain.ErrInvalidNumber)
	}
	rest, err := bigcount.Sub(total, bigcount.Mul(unit, bigcount.FromUint64(uint64(i))))
	if err != nil || rest.IsZero() {
		return bigcount.Counter{}, fmt.Errorf("chunk piece %d of %s by %s: %w", i, total, unit, domain.ErrOverflow)
	}
	if rest.Cmp(unit) < 0 {
		return rest, nil
	}
	return unit, nil
}
