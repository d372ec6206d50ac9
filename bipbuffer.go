package bipgo

// BipBuffer is a fixed-capacity buffer that stores data in two revolving
// committed regions (A and B) plus at most one outstanding reservation.
//
// Region A is the primary readable region; region B only exists while A
// occupies the tail of the store and new commits had to wrap to the front.
// Once A is fully decommitted, B is promoted into its place. Readers always
// see one contiguous slice, never a split pair.
//
// The zero value is not usable; create instances with New.
type BipBuffer[T any] struct {
	buf []T

	// Committed region A [aStart, aEnd).
	aStart int
	aEnd   int

	// Committed region B [bStart, bEnd). Non-empty only while A is non-empty.
	bStart int
	bEnd   int

	// Outstanding reservation [reserveStart, reserveEnd).
	reserveStart int
	reserveEnd   int
}

// New creates a BipBuffer with room for capacity elements. The backing store
// is allocated once, zero-initialized, and never resized.
//
// New panics if capacity is negative. A zero-capacity buffer is legal; every
// Reserve on it fails with ErrNoSpace.
func New[T any](capacity int) *BipBuffer[T] {
	if capacity < 0 {
		panic("bipgo: negative capacity")
	}
	return &BipBuffer[T]{
		buf: make([]T, capacity),
	}
}

// Reserve returns a mutable slice of up to length slots for writing.
//
// The slice aliases the backing store directly; data written to it becomes
// readable only after Commit. If less free space is available than requested,
// the returned slice is shorter, which is not an error. Reserve fails with
// ErrNoSpace only when no free space exists at all.
//
// At most one reservation is outstanding at a time. Calling Reserve while a
// reservation is outstanding silently discards the previous grant; writes
// into a previously returned slice must not be interleaved with a new
// Reserve or Commit.
func (b *BipBuffer[T]) Reserve(length int) ([]T, error) {
	if length < 0 {
		length = 0
	}

	start, free := b.nextFree()
	if free == 0 {
		return nil, ErrNoSpace
	}

	b.reserveStart = start
	b.reserveEnd = start + min(free, length)

	return b.buf[b.reserveStart:b.reserveEnd], nil
}

// nextFree returns the start and length of the block the next Reserve would
// grant. A zero length means Reserve would fail with ErrNoSpace, which can
// happen even while CommittedLen is below Capacity: a wrapped commit can
// strand slots after A's end that only become reservable once A is fully
// decommitted and B is promoted.
func (b *BipBuffer[T]) nextFree() (start, free int) {
	switch {
	case b.bEnd-b.bStart > 0:
		// A has wrapped; the only place left to grow is the gap between
		// B's end and A's start.
		return b.bEnd, b.aStart - b.bEnd
	case len(b.buf)-b.aEnd >= b.aStart:
		// Prefer extending after A, keeping a single contiguous region
		// for as long as possible.
		return b.aEnd, len(b.buf) - b.aEnd
	default:
		// Wrap to the front. The first commit after this creates region B.
		return 0, b.aStart
	}
}

// Commit folds the first length elements of the current reservation into a
// committed region and clears the reservation.
//
// Commit(0) is a pure cancellation: the reservation is discarded and no
// region changes. A length larger than the reservation is clamped to the
// reservation size.
func (b *BipBuffer[T]) Commit(length int) {
	if length <= 0 {
		b.reserveStart = 0
		b.reserveEnd = 0
		return
	}

	toCommit := min(length, b.reserveEnd-b.reserveStart)

	switch {
	case b.aEnd-b.aStart == 0 && b.bEnd-b.bStart == 0:
		b.aStart = b.reserveStart
		b.aEnd = b.reserveStart + toCommit
	case b.reserveStart == b.aEnd:
		b.aEnd += toCommit
	default:
		// Front-wrap reservations start at index 0, so B is always [0, bEnd).
		b.bEnd += toCommit
	}

	b.reserveStart = 0
	b.reserveEnd = 0
}

// Read returns all committed data in region A as one contiguous mutable
// slice, or ErrEmpty if no committed data is available.
//
// Region B is never exposed directly; it becomes readable after A is fully
// decommitted and B is promoted in its place. The returned slice aliases the
// backing store and is invalidated by a subsequent Decommit or Clear.
func (b *BipBuffer[T]) Read() ([]T, error) {
	if b.aEnd-b.aStart == 0 {
		return nil, ErrEmpty
	}
	return b.buf[b.aStart:b.aEnd], nil
}

// Decommit marks the first length elements of the readable data as consumed,
// freeing their space for future reservations.
//
// If length covers all of region A, B is promoted to become the new A and any
// excess is ignored; a single Decommit never consumes into the promoted
// region. Out-of-range lengths clamp rather than error.
func (b *BipBuffer[T]) Decommit(length int) {
	if length < 0 {
		length = 0
	}
	if length >= b.aEnd-b.aStart {
		b.aStart = b.bStart
		b.aEnd = b.bEnd
		b.bStart = 0
		b.bEnd = 0
	} else {
		b.aStart += length
	}
}

// Clear resets all regions and the reservation. Data in the backing store is
// unchanged but no longer reachable through Read.
func (b *BipBuffer[T]) Clear() {
	b.aStart = 0
	b.aEnd = 0
	b.bStart = 0
	b.bEnd = 0
	b.reserveStart = 0
	b.reserveEnd = 0
}

// CommittedLen returns the number of committed elements across both regions.
// This can exceed the length of the slice returned by a single Read when
// data has wrapped.
func (b *BipBuffer[T]) CommittedLen() int {
	return (b.aEnd - b.aStart) + (b.bEnd - b.bStart)
}

// ReservedLen returns the size of the outstanding reservation, or 0 if none.
func (b *BipBuffer[T]) ReservedLen() int {
	return b.reserveEnd - b.reserveStart
}

// Capacity returns the size of the backing store.
func (b *BipBuffer[T]) Capacity() int {
	return len(b.buf)
}

// IsEmpty reports whether the buffer holds neither committed data nor an
// outstanding reservation.
func (b *BipBuffer[T]) IsEmpty() bool {
	return b.CommittedLen() == 0 && b.ReservedLen() == 0
}
