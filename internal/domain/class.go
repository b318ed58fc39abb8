package domain

import (
	"fmt"
	"strings"
)

// Class is a character class of a key.
type Class int

const (
	Letter Class = iota
	Symbol
	Digit
	// Other covers printable ASCII that belongs to no key class (space).
	Other
)

// Classes lists the key classes in generation order.
var Classes = [...]Class{Letter, Symbol, Digit}

// NumClasses is the number of key classes.
const NumClasses = len(Classes)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Letter:
		return "letters"
	case Symbol:
		return "symbols"
	case Digit:
		return "digits"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Valid reports whether c is one of Letter, Symbol or Digit.
func (c Class) Valid() bool {
	return c >= Letter && c <= Digit
}

// ParseClass maps a class name to its Class.
// Both the short ("ltr", "sbl", "num") and long names are accepted.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ltr", "letter", "letters":
		return Letter, nil
	case "sbl", "symbol", "symbols":
		return Symbol, nil
	case "num", "digit", "digits":
		return Digit, nil
	}
	return 0, fmt.Errorf("class %q: %w", name, ErrInvalidKind)
}

// Classify returns the ASCII class of b. Non-printable bytes are Other.
func Classify(b byte) Class {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return Letter
	case b >= '0' && b <= '9':
		return Digit
	case b >= '!' && b <= '~':
		return Symbol
	default:
		return Other
	}
}

// IsAllowed reports whether r may appear in an alphabet:
// ASCII and not a control character.
func IsAllowed(r rune) bool {
	return r >= ' ' && r <= '~'
}
