// Package bipgo implements Simon Cooke's Bip-Buffer, a circular buffer that
// always hands out contiguous memory.
//
// A Bip-Buffer is similar to a ring buffer, but data lives in two revolving
// regions of the buffer space instead of wrapping a single region around the
// end of the store. Readers therefore always receive one contiguous slice,
// even when the buffered data spans what a plain ring buffer would split at
// the wrap point. This makes it a good fit for producer/consumer pipelines
// that stage I/O for APIs requiring contiguous blocks, eliminating the interim
// copy a ring buffer would force.
//
// # Quick Start
//
//	// Create a 4-element Bip-Buffer of bytes
//	buf := bipgo.New[byte](4)
//
//	// Reserve space, write into it, then commit to make it readable
//	reserved, _ := buf.Reserve(4)
//	copy(reserved, []byte{7, 22, 218, 56})
//	buf.Commit(4)
//
//	// Read returns all committed data as one contiguous slice
//	block, _ := buf.Read()       // [7 22 218 56]
//
//	// Decommit marks a prefix as consumed, freeing it for future writes
//	buf.Decommit(2)
//	block, _ = buf.Read()        // [218 56]
//
// # Reservations
//
// Reserve grants up to the requested length; when less free space is
// available the grant is shorter, which is not an error. Callers must check
// the length of the returned slice. At most one reservation is outstanding at
// a time: a second Reserve silently replaces the first, and Commit(0)
// abandons a reservation without committing anything.
//
// # Concurrency
//
// BipBuffer performs no internal synchronization and assumes a single-writer,
// single-reader discipline enforced by the caller. For a ready-made
// synchronized layer, Pipe wraps a byte Bip-Buffer behind an io.Reader /
// io.Writer pair with blocking semantics modeled after io.Pipe.
package bipgo
