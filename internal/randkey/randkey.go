// Package randkey generates random keys with exact per-class character
// counts. Counts are arbitrary-precision; generation splits them into
// bounded chunks that are sampled in parallel and then shuffled together.
package randkey

import (
	"fmt"
	"log/slog"

	"randkey/internal/alphabet"
	"randkey/internal/bigcount"
	"randkey/internal/domain"
	"randkey/internal/pool"
	"randkey/internal/sampler"
)

const (
	// DefaultUnit is the chunk size used until SetUnit is called.
	DefaultUnit = 1 << 20

	// DefaultMaxLength caps the key length Generate will allocate.
	DefaultMaxLength = 1<<31 - 1
)

// Sampler draws the random indices and the final permutation.
type Sampler interface {
	Indices(stream uint64, count, size int) ([]int, error)
	Shuffle(stream uint64, b []byte)
}

// RandKey owns the class counts, the alphabet and the last generated key.
// It is not safe for concurrent use.
type RandKey struct {
	counts   [domain.NumClasses]bigcount.Counter
	key      string
	unit     bigcount.Counter
	alphabet *alphabet.Alphabet

	sampler   Sampler
	workers   int
	maxLength int
	logger    *slog.Logger
}

// Option configures a RandKey.
type Option func(*RandKey)

// WithSampler replaces the default random source.
func WithSampler(s Sampler) Option {
	return func(k *RandKey) {
		k.sampler = s
	}
}

// WithWorkers bounds the goroutines used per class. Zero or less means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(k *RandKey) {
		k.workers = n
	}
}

// WithMaxLength caps the key length Generate accepts; longer keys fail
// with domain.ErrOverflow before anything is allocated. Zero or less
// keeps DefaultMaxLength.
func WithMaxLength(n int) Option {
	return func(k *RandKey) {
		if n > 0 {
			k.maxLength = n
		}
	}
}

// WithLogger sets the logger for generation events.
func WithLogger(l *slog.Logger) Option {
	return func(k *RandKey) {
		if l != nil {
			k.logger = l
		}
	}
}

func newRandKey(opts []Option) *RandKey {
	k := &RandKey{
		unit:      bigcount.FromUint64(DefaultUnit),
		alphabet:  alphabet.Default(),
		sampler:   sampler.New(),
		workers:   pool.DefaultWorkers(),
		maxLength: DefaultMaxLength,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.workers <= 0 {
		k.workers = pool.DefaultWorkers()
	}
	return k
}

// New creates a RandKey from decimal letter, symbol and digit counts.
// The key is empty until Generate is called.
func New(letters, symbols, digits string, opts ...Option) (*RandKey, error) {
	k := newRandKey(opts)
	for i, text := range [...]string{letters, symbols, digits} {
		c, err := bigcount.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s count: %w", domain.Classes[i], err)
		}
		k.counts[i] = c
	}
	return k, nil
}

// FromText creates a RandKey whose key is text and whose counts are the
// class counts of text.
func FromText(text string, opts ...Option) (*RandKey, error) {
	k := newRandKey(opts)
	if err := k.SetKey(text, domain.Update); err != nil {
		return nil, err
	}
	return k, nil
}

// Key returns the current key.
func (k *RandKey) Key() string {
	return k.key
}

// String returns the current key.
func (k *RandKey) String() string {
	return k.key
}

// Len returns the length of the current key.
func (k *RandKey) Len() int {
	return len(k.key)
}

// IsEmpty reports whether the key is empty.
func (k *RandKey) IsEmpty() bool {
	return k.key == ""
}

// SetKey replaces the key.
//
// With domain.Update the counts are recomputed from text. With domain.Check
// text is accepted only if its counts equal the stored counts; otherwise
// domain.ErrInconsistentField is returned and nothing changes.
func (k *RandKey) SetKey(text string, mode domain.Mode) error {
	if mode != domain.Update && mode != domain.Check {
		return fmt.Errorf("set key mode %s: %w", mode, domain.ErrInvalidKind)
	}

	counts, err := alphabet.Tally(text, k.workers)
	if err != nil {
		return fmt.Errorf("set key: %w", err)
	}

	if mode == domain.Check {
		for _, c := range domain.Classes {
			if !counts[c].Equal(k.counts[c]) {
				return fmt.Errorf("set key: %s count %s, want %s: %w",
					c, counts[c], k.counts[c], domain.ErrInconsistentField)
			}
		}
	}

	k.counts = counts
	k.key = text
	return nil
}

// Unit returns the chunk size in decimal.
func (k *RandKey) Unit() string {
	return k.unit.String()
}

// SetUnit sets the chunk size. Zero is rejected with domain.ErrInvalidUnit.
// Larger units mean fewer, bigger chunks.
func (k *RandKey) SetUnit(text string) error {
	u, err := bigcount.Parse(text)
	if err != nil {
		return fmt.Errorf("set unit: %w", err)
	}
	if u.IsZero() {
		return fmt.Errorf("set unit %q: %w", text, domain.ErrInvalidUnit)
	}
	k.unit = u
	return nil
}

// Count returns the requested count of class in decimal.
func (k *RandKey) Count(class domain.Class) (string, error) {
	if !class.Valid() {
		return "", fmt.Errorf("count of %s: %w", class, domain.ErrInvalidKind)
	}
	return k.counts[class].String(), nil
}

// SetCount sets the requested count of class from a decimal string.
func (k *RandKey) SetCount(class domain.Class, text string) error {
	if !class.Valid() {
		return fmt.Errorf("set count of %s: %w", class, domain.ErrInvalidKind)
	}
	c, err := bigcount.Parse(text)
	if err != nil {
		return fmt.Errorf("set %s count: %w", class, err)
	}
	k.counts[class] = c
	return nil
}

// Data returns the characters enabled for class.
func (k *RandKey) Data(class domain.Class) (string, error) {
	return k.alphabet.Data(class)
}

// AllData returns the enabled letters, symbols and digits.
func (k *RandKey) AllData() [domain.NumClasses]string {
	return k.alphabet.All()
}

// AddChars enables chars in the alphabet.
func (k *RandKey) AddChars(chars string) error {
	return k.alphabet.Add(chars)
}

// DeleteChars disables chars in the alphabet. Every character must be
// enabled already.
func (k *RandKey) DeleteChars(chars string) error {
	return k.alphabet.Delete(chars)
}

// ReplaceAlphabet rebuilds the alphabet from chars and checks that every
// class with a nonzero count still has characters. On a consistency
// failure the new alphabet is kept and domain.ErrMissingCharacterClass is
// returned so the caller can add characters or change counts.
func (k *RandKey) ReplaceAlphabet(chars string) error {
	if err := k.alphabet.Replace(chars); err != nil {
		return err
	}
	return k.alphabet.CheckConsistency(k.counts)
}

// Clear disables every character of class.
func (k *RandKey) Clear(class domain.Class) error {
	return k.alphabet.Clear(class)
}

// ClearAll disables every character.
func (k *RandKey) ClearAll() {
	k.alphabet.ClearAll()
}

// Clone returns an independent copy.
func (k *RandKey) Clone() *RandKey {
	c := *k
	c.alphabet = k.alphabet.Clone()
	return &c
}

// Concat returns k + other: summed counts, k's key followed by other's key
// (not reshuffled), the union of both alphabets, and k's unit and
// collaborators. Neither operand is modified.
func (k *RandKey) Concat(other *RandKey) *RandKey {
	c := k.Clone()
	c.Extend(other)
	return c
}

// Extend is the in-place form of Concat.
func (k *RandKey) Extend(other *RandKey) {
	for _, c := range domain.Classes {
		k.counts[c] = bigcount.Add(k.counts[c], other.counts[c])
	}
	k.key += other.key
	k.alphabet.Union(other.alphabet)
}
