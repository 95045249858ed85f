package lifetimes

import (
	"fmt"
	"io"
)

func demoScope(w io.Writer) {
	outer := "outer"
	{
		inner := "inner"
		fmt.Fprintf(w, "  inside block: %s, %s\n", outer, inner)
	}
	// inner is out of scope here; using it is a compile error.
	fmt.Fprintf(w, "  after block: %s (inner is gone)\n", outer)

	if n := len(outer); n > 3 {
		fmt.Fprintf(w, "  if-scoped n = %d\n", n)
	}

	for i := range 2 {
		fmt.Fprintf(w, "  loop-scoped i = %d (a fresh variable per iteration since Go 1.22)\n", i)
	}
	fmt.Fprintln(w, "  Scope is about names. How long the value lives is a separate question.")
}

// returnValue copies x out; x stays in this frame.
//
// Escape analysis: x does not escape.
func returnValue() int {
	x := 42
	return x
}

// sumArray works on a fixed-size array the compiler can place on the stack.
func sumArray() int {
	arr := [5]int{1, 2, 3, 4, 5}
	total := 0
	for _, v := range arr {
		total += v
	}
	return total
}

// returnPointer returns &x, so x must outlive the frame: it moves to the heap.
//
// Escape analysis: moved to heap: x.
func returnPointer() *int {
	x := 42
	return &x
}

// closureCapture returns a closure over x; x escapes with it.
func closureCapture() func() int {
	x := 0
	return func() int {
		x++
		return x
	}
}

// interfaceBox stores an int in an interface; values that do not fit in
// the interface word are boxed on the heap.
func interfaceBox(n int) any {
	return n
}

// makeSlice returns a slice whose backing array must outlive the call.
func makeSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}
	return s
}

func demoEscape(w io.Writer) {
	fmt.Fprintf(w, "  returnValue()    → %d   (copied out, stays on the stack)\n", returnValue())
	fmt.Fprintf(w, "  sumArray()       → %d   (fixed array, stack)\n", sumArray())

	p := returnPointer()
	fmt.Fprintf(w, "  *returnPointer() → %d   (x escaped to the heap)\n", *p)

	counter := closureCapture()
	a, b := counter(), counter()
	fmt.Fprintf(w, "  closureCapture() → %d, %d (x lives with the closure)\n", a, b)

	fmt.Fprintf(w, "  interfaceBox(7)  → %v   (boxed unless the value is tiny or constant)\n", interfaceBox(7))
	fmt.Fprintf(w, "  makeSlice(4)     → %v (backing array on the heap)\n", makeSlice(4))

	fmt.Fprintln(w, "\n  Inspect the compiler's decisions with:")
	fmt.Fprintln(w, "    go build -gcflags=-m ./...")
	fmt.Fprintln(w, "    ./escape.go: moved to heap: x")
	fmt.Fprintln(w, "    ./escape.go: make([]int, n) escapes to heap")
	fmt.Fprintln(w, "  Stack allocation is free to reclaim; heap allocation costs GC work.")
}
