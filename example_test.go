package bipgo_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bipgo"
)

// Example demonstrates the basic reserve/commit/read/decommit cycle.
func Example() {
	// Create a 4-element Bip-Buffer of bytes
	buf := bipgo.New[byte](4)

	// Reserve 4 slots and write into them
	reserved, err := buf.Reserve(4)
	if err != nil {
		panic(err)
	}
	copy(reserved, []byte{7, 22, 218, 56})

	// Commit makes the written data readable
	buf.Commit(4)

	// Read returns the committed data as one contiguous block
	block, _ := buf.Read()
	fmt.Println(block)

	// Mark the first two elements as consumed
	buf.Decommit(2)

	block, _ = buf.Read()
	fmt.Println(block)
	// Output:
	// [7 22 218 56]
	// [218 56]
}

// Example_wrapAround shows how data wraps into a second region and is still
// read back contiguously, in original write order.
func Example_wrapAround() {
	buf := bipgo.New[byte](4)

	reserved, _ := buf.Reserve(4)
	copy(reserved, []byte{7, 22, 218, 56})
	buf.Commit(4)
	buf.Decommit(2)

	// Only the two freed slots at the front are available, so the grant is
	// clipped to 2 and wraps.
	reserved, _ = buf.Reserve(4)
	fmt.Println("granted:", len(reserved))
	copy(reserved, []byte{49, 81})
	buf.Commit(2)

	// The old tail is still readable first
	block, _ := buf.Read()
	fmt.Println(block)

	// Consuming it promotes the wrapped region
	buf.Decommit(2)
	block, _ = buf.Read()
	fmt.Println(block)
	// Output:
	// granted: 2
	// [218 56]
	// [49 81]
}

// ExamplePipe streams data between goroutines through a Bip-Buffer backed
// pipe.
func ExamplePipe() {
	pr, pw := bipgo.Pipe(8)

	go func() {
		defer pw.Close()
		io.Copy(pw, strings.NewReader("staged through a bip-buffer"))
	}()

	data, _ := io.ReadAll(pr)
	fmt.Println(string(data))
	// Output: staged through a bip-buffer
}
