package variables

import (
	"fmt"
	"io"
)

// demoDeclarations shows the declaration forms and zero values.
//
// Every Go variable is mutable; there is no `mut` keyword. Immutability is
// expressed with const (compile-time values only) or by not exporting a
// setter.
func demoDeclarations(w io.Writer) {
	var a int      // zero value: 0
	var b string   // zero value: ""
	var c bool     // zero value: false
	var d *int     // zero value: nil
	var e []string // zero value: nil slice (len 0, usable with append)
	var f float64 = 2.5
	g := 42 // short declaration, type inferred as int
	h, i := "go", 1.22

	fmt.Fprintf(w, "  var a int      → %d\n", a)
	fmt.Fprintf(w, "  var b string   → %q\n", b)
	fmt.Fprintf(w, "  var c bool     → %v\n", c)
	fmt.Fprintf(w, "  var d *int     → %v\n", d)
	fmt.Fprintf(w, "  var e []string → %v  nil=%v len=%d\n", e, e == nil, len(e))
	fmt.Fprintf(w, "  var f float64 = 2.5 → %v\n", f)
	fmt.Fprintf(w, "  g := 42        → %d (%T)\n", g, g)
	fmt.Fprintf(w, "  h, i := \"go\", 1.22 → %s %v (%T)\n", h, i, i)

	// Reassignment just works.
	g = 100
	fmt.Fprintf(w, "\n  g = 100        → %d\n", g)

	// Parallel assignment evaluates the right side first: a swap needs no temp.
	x, y := 1, 2
	x, y = y, x
	fmt.Fprintf(w, "  x, y = y, x    → x=%d y=%d\n", x, y)

	// _ discards a value the compiler would otherwise flag as unused.
	_, second := pair()
	fmt.Fprintf(w, "  _, second := pair() → %d\n", second)
}

func pair() (int, int) { return 10, 20 }

// demoShadowing: := in an inner scope declares a NEW variable that hides the
// outer one. The outer variable is untouched once the block ends.
func demoShadowing(w io.Writer) {
	x := 5
	fmt.Fprintf(w, "  outer x = %d\n", x)
	{
		x := x * 2 // new x, initialized from the outer one
		fmt.Fprintf(w, "  inner x = %d (shadows outer)\n", x)
	}
	fmt.Fprintf(w, "  outer x after block = %d\n", x)

	// The classic gotcha: err shadowed inside an if.
	var err error
	if true {
		_, err := divide(1, 0) // declares a new err, outer stays nil
		fmt.Fprintf(w, "\n  inner err = %v\n", err)
	}
	fmt.Fprintf(w, "  outer err = %v  ← shadowed, never assigned\n", err)
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %d by zero", a)
	}
	return a / b, nil
}
