package bipgo

import "errors"

var (
	// ErrNoSpace is returned by Reserve when no free space is available for
	// writing; space must be reclaimed by calling Decommit (or Clear) first.
	// It is not returned merely because the requested length exceeds the free
	// space; a short grant is the normal success path.
	ErrNoSpace = errors.New("bipgo: no space")

	// ErrEmpty is returned by Read when no committed data is available.
	ErrEmpty = errors.New("bipgo: empty")
)
