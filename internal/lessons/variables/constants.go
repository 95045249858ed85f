package variables

import (
	"fmt"
	"io"
	"time"
)

// Package-level declarations live for the whole program.
const MaxPoints = 100_000

var startingLevel = 1

// Untyped constants have arbitrary precision and take a type only when used.
const huge = 1 << 100

type Weekday int

// iota counts up inside a const block; see the enums lesson for more.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
)

func demoConstants(w io.Writer) {
	fmt.Fprintf(w, "  const MaxPoints = 100_000 → %d (digit separators allowed)\n", MaxPoints)
	fmt.Fprintf(w, "  var startingLevel = %d (package-level, mutable)\n", startingLevel)

	// huge does not fit in any integer type, but arithmetic on it is fine at
	// compile time as long as the result fits where it is used.
	fmt.Fprintf(w, "  huge >> 98 = %d (untyped const math)\n", huge>>98)

	// An untyped constant adapts: the same 2 works as int, float64 and Duration.
	const two = 2
	var asFloat float64 = two
	timeout := two * time.Second
	fmt.Fprintf(w, "  const two = 2 → float64 %v, Duration %v\n", asFloat, timeout)

	// A typed constant does not adapt.
	const typed int = 2
	fmt.Fprintf(w, "  const typed int = 2 → needs float64(typed) = %v\n", float64(typed))

	fmt.Fprintf(w, "  iota: Sunday=%d Monday=%d Tuesday=%d\n", Sunday, Monday, Tuesday)
}
