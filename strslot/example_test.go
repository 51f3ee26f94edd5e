package strslot_test

import (
	"fmt"

	"github.com/c360/ringkit/strslot"
)

// ExampleRing_Push demonstrates silent truncation to the slot width
func ExampleRing_Push() {
	r, _ := strslot.New(4, 6)

	r.Push("hello-world")

	text, _ := r.Pop()
	fmt.Println(text)
	// Output: hello
}

// ExampleRing_PopInto demonstrates bounded copy-out into a caller buffer
func ExampleRing_PopInto() {
	r, _ := strslot.New(4, 32)

	r.Push("bounded tail")

	dst := make([]byte, 8)
	n, ok := r.PopInto(dst)
	fmt.Println(n, ok, string(dst[:n]))
	// Output: 7 true bounded
}
