package domain

import "fmt"

// Mode selects how a key is replaced.
type Mode int

const (
	// Update recomputes the counts from the new key.
	Update Mode = iota + 1
	// Check accepts the new key only if its counts match the stored ones.
	Check
)

func (m Mode) String() string {
	switch m {
	case Update:
		return "update"
	case Check:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
