package controlflow

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

func add(a, b int) int { return a + b }

// divmod returns two values; callers must take both or discard with _.
func divmod(a, b int) (int, int) { return a / b, a % b }

// stats uses named results. A bare return sends the current values back.
func stats(nums ...int) (min, max, sum int) {
	if len(nums) == 0 {
		return
	}
	min, max = nums[0], nums[0]
	for _, n := range nums {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
		sum += n
	}
	return
}

// Everything is passed by value. A pointer parameter lets the callee write
// to the caller's variable.
func incrementCopy(n int) { n++ }
func incrementPtr(n *int) { *n++ }
func appendTo(s []string) { _ = append(s, "lost") }
func setFirst(s []string) { s[0] = "changed" }

var errEmptyName = errors.New("empty name")

func greet(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errEmptyName
	}
	return "hello, " + name, nil
}

func demoFunctions(w io.Writer) {
	fmt.Fprintf(w, "  add(2, 3) = %d\n", add(2, 3))

	q, r := divmod(17, 5)
	fmt.Fprintf(w, "  divmod(17, 5) = %d, %d\n", q, r)

	lo, hi, total := stats(4, 8, 15, 16, 23, 42)
	fmt.Fprintf(w, "  stats(...) = min=%d max=%d sum=%d\n", lo, hi, total)

	nums := []int{1, 2, 3}
	_, _, total = stats(nums...) // spread a slice into a variadic parameter
	fmt.Fprintf(w, "  stats(nums...) sum=%d\n", total)

	n := 10
	incrementCopy(n)
	fmt.Fprintf(w, "\n  incrementCopy(n) → n=%d (copy changed)\n", n)
	incrementPtr(&n)
	fmt.Fprintf(w, "  incrementPtr(&n) → n=%d\n", n)

	s := []string{"a", "b"}
	appendTo(s)
	setFirst(s)
	fmt.Fprintf(w, "  slice after appendTo + setFirst → %v\n", s)

	for _, name := range []string{"gopher", "  "} {
		if msg, err := greet(name); err != nil {
			fmt.Fprintf(w, "  greet(%q) → error: %v\n", name, err)
		} else {
			fmt.Fprintf(w, "  greet(%q) → %s\n", name, msg)
		}
	}
}

// apply takes a function value as a parameter.
func apply(nums []int, f func(int) int) []int {
	out := make([]int, len(nums))
	for i, n := range nums {
		out[i] = f(n)
	}
	return out
}

// counter returns a closure that owns its own count.
func counter() func() int {
	c := 0
	return func() int {
		c++
		return c
	}
}

func demoClosures(w io.Writer) {
	square := func(n int) int { return n * n }
	fmt.Fprintf(w, "  apply([1 2 3], square) = %v\n", apply([]int{1, 2, 3}, square))

	factor := 10
	scale := func(n int) int { return n * factor } // captures factor by reference
	factor = 3
	fmt.Fprintf(w, "  scale captured factor, later set to 3 → %v\n", apply([]int{1, 2}, scale))

	next := counter()
	other := counter()
	fmt.Fprintf(w, "  next() next() next() = %d %d %d\n", next(), next(), next())
	fmt.Fprintf(w, "  other() = %d  ← separate state\n", other())

	// Immediately invoked function literal.
	result := func(a, b int) int { return a * b }(6, 7)
	fmt.Fprintf(w, "  func(a, b int) int {...}(6, 7) = %d\n", result)

	// Recursive closure: declare first, then assign.
	var fib func(int) int
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}
	fmt.Fprintf(w, "  fib(10) = %d\n", fib(10))
}
