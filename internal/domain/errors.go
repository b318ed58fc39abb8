package domain

import "errors"

var (
	// ErrInvalidNumber indicates text is not a valid non-negative decimal integer.
	ErrInvalidNumber = errors.New("invalid non-negative integer")

	// ErrInvalidChar indicates a non-ASCII or ASCII control character.
	ErrInvalidChar = errors.New("invalid character: non-ASCII or control")

	// ErrDeleteNonexistentValue indicates removal of a character absent from the alphabet.
	ErrDeleteNonexistentValue = errors.New("delete non-existent value")

	// ErrMissingCharacterClass indicates a class has a nonzero count but no characters.
	ErrMissingCharacterClass = errors.New("missing character class")

	// ErrInvalidUnit indicates a zero chunk unit.
	ErrInvalidUnit = errors.New("unit can not be zero")

	// ErrInconsistentField indicates a key whose class counts differ from the stored counts.
	ErrInconsistentField = errors.New("inconsistent field")

	// ErrInvalidKind indicates an unknown class or mode selector.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrOverflow indicates a value does not fit the bounded machine integer.
	ErrOverflow = errors.New("value exceeds machine integer range")

	// ErrUnderflow indicates a subtraction below zero.
	ErrUnderflow = errors.New("subtraction below zero")
)
