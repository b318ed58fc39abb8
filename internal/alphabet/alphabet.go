// Package alphabet holds the characters a key may be built from, split
// into letters, symbols and digits.
package alphabet

import (
	"fmt"
	"slices"

	"randkey/internal/bigcount"
	"randkey/internal/domain"
)

// Alphabet is three disjoint ordered sets of printable ASCII characters.
// A character's set is always its ASCII class. Alphabet is not safe for
// concurrent mutation.
type Alphabet struct {
	sets [domain.NumClasses][]byte
}

// Default returns the alphabet of all printable ASCII except space.
func Default() *Alphabet {
	a := &Alphabet{}
	for b := byte('!'); b <= '~'; b++ {
		c := domain.Classify(b)
		a.sets[c] = append(a.sets[c], b)
	}
	return a
}

// Empty returns an alphabet with no characters.
func Empty() *Alphabet {
	return &Alphabet{}
}

// Clone returns an independent copy.
func (a *Alphabet) Clone() *Alphabet {
	c := &Alphabet{}
	for i, s := range a.sets {
		c.sets[i] = slices.Clone(s)
	}
	return c
}

// Data returns the characters enabled for class.
func (a *Alphabet) Data(class domain.Class) (string, error) {
	if !class.Valid() {
		return "", fmt.Errorf("alphabet data for %s: %w", class, domain.ErrInvalidKind)
	}
	return string(a.sets[class]), nil
}

// Bytes returns a copy of the characters enabled for class, or nil for an
// invalid class.
func (a *Alphabet) Bytes(class domain.Class) []byte {
	if !class.Valid() {
		return nil
	}
	return slices.Clone(a.sets[class])
}

// All returns letters, symbols and digits in that order.
func (a *Alphabet) All() [domain.NumClasses]string {
	var out [domain.NumClasses]string
	for i, s := range a.sets {
		out[i] = string(s)
	}
	return out
}

// Len returns the number of characters in class.
func (a *Alphabet) Len(class domain.Class) int {
	if !class.Valid() {
		return 0
	}
	return len(a.sets[class])
}

// CheckConsistency fails if any class with a nonzero count has no characters.
func (a *Alphabet) CheckConsistency(counts [domain.NumClasses]bigcount.Counter) error {
	for _, c := range domain.Classes {
		if !counts[c].IsZero() && len(a.sets[c]) == 0 {
			return fmt.Errorf("%s requested %s times but none enabled: %w", c, counts[c], domain.ErrMissingCharacterClass)
		}
	}
	return nil
}

// Add merges chars into their class sets. Characters of no class (space)
// are ignored. Nothing changes if any character is invalid.
func (a *Alphabet) Add(chars string) error {
	if err := validate(chars); err != nil {
		return err
	}
	for i := 0; i < len(chars); i++ {
		a.insert(chars[i])
	}
	return nil
}

// Delete removes chars from the alphabet. Every character must be present;
// otherwise nothing is removed.
func (a *Alphabet) Delete(chars string) error {
	if err := validate(chars); err != nil {
		return err
	}
	for i := 0; i < len(chars); i++ {
		if !a.Contains(chars[i]) {
			return fmt.Errorf("delete %q: %w", chars[i], domain.ErrDeleteNonexistentValue)
		}
	}
	for i := 0; i < len(chars); i++ {
		c := domain.Classify(chars[i])
		if j, ok := slices.BinarySearch(a.sets[c], chars[i]); ok {
			a.sets[c] = slices.Delete(a.sets[c], j, j+1)
		}
	}
	return nil
}

// Replace discards the current sets and rebuilds them from chars.
// Callers should run CheckConsistency afterwards.
func (a *Alphabet) Replace(chars string) error {
	if err := validate(chars); err != nil {
		return err
	}
	a.sets = [domain.NumClasses][]byte{}
	for i := 0; i < len(chars); i++ {
		a.insert(chars[i])
	}
	return nil
}

// Union adds every character of other.
func (a *Alphabet) Union(other *Alphabet) {
	for _, s := range other.sets {
		for _, b := range s {
			a.insert(b)
		}
	}
}

// Clear empties the set for class.
func (a *Alphabet) Clear(class domain.Class) error {
	if !class.Valid() {
		return fmt.Errorf("clear %s: %w", class, domain.ErrInvalidKind)
	}
	a.sets[class] = nil
	return nil
}

// ClearAll empties every set.
func (a *Alphabet) ClearAll() {
	a.sets = [domain.NumClasses][]byte{}
}

// Contains reports whether b is enabled in any class.
func (a *Alphabet) Contains(b byte) bool {
	c := domain.Classify(b)
	if !c.Valid() {
		return false
	}
	_, ok := slices.BinarySearch(a.sets[c], b)
	return ok
}

func (a *Alphabet) insert(b byte) {
	c := domain.Classify(b)
	if !c.Valid() {
		return
	}
	if j, ok := slices.BinarySearch(a.sets[c], b); !ok {
		a.sets[c] = slices.Insert(a.sets[c], j, b)
	}
}

func validate(chars string) error {
	for _, r := range chars {
		if !domain.IsAllowed(r) {
			return fmt.Errorf("character %q: %w", r, domain.ErrInvalidChar)
		}
	}
	return nil
}
