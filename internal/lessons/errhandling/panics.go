package errhandling

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
)

func demoKinds(w io.Writer) {
	fmt.Fprintln(w, "  error  — expected, recoverable: bad input, missing file, timeout. Returned as a value.")
	fmt.Fprintln(w, "  panic  — a bug or an impossible state: nil map write, index out of range.")
	fmt.Fprintln(w, "  The error interface is one method:")
	fmt.Fprintln(w, "    type error interface { Error() string }")

	_, err := strconv.Atoi("seven")
	fmt.Fprintf(w, "  strconv.Atoi(\"seven\") → %v (%T)\n", err, err)
}

// capture runs f and converts a panic into an error. A panic must not cross
// a package boundary, so this is the shape used at API edges.
func capture(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok {
			err = fmt.Errorf("runtime panic: %w", re)
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	f()
	return nil
}

func demoPanic(w io.Writer) {
	err := capture(func() { panic("explicit panic") })
	fmt.Fprintf(w, "  panic(\"explicit panic\")      → %v\n", err)

	err = capture(func() {
		var s []int
		_ = s[3]
	})
	fmt.Fprintf(w, "  index out of range           → %v\n", err)

	err = capture(func() {
		var m map[string]int
		m["x"] = 1
	})
	var re runtime.Error
	fmt.Fprintf(w, "  write to nil map             → runtime.Error=%v\n", errors.As(err, &re))

	err = capture(func() {})
	fmt.Fprintf(w, "  no panic                     → %v\n", err)

	// Deferred calls still run while the stack unwinds.
	var trace []string
	_ = capture(func() {
		defer func() { trace = append(trace, "deferred cleanup ran") }()
		trace = append(trace, "before panic")
		panic("boom")
	})
	fmt.Fprintf(w, "  unwind order → %v\n", trace)

	fmt.Fprintln(w, "  os.Exit and log.Fatal skip deferred calls; return errors to main instead")
}
