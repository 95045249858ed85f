package controlflow

import (
	"fmt"
	"io"
)

// lifo: defer is a stack. Each defer pushes; on return the stack is popped.
func lifo(w io.Writer) {
	fmt.Fprintln(w, "  body")
	defer fmt.Fprintln(w, "  defer 1  ← registered first, runs last")
	defer fmt.Fprintln(w, "  defer 2")
	defer fmt.Fprintln(w, "  defer 3  ← registered last, runs first")
}

// argEval: arguments are evaluated when the defer statement runs.
func argEval(w io.Writer) {
	x := 0
	defer fmt.Fprintln(w, "  defer saw x =", x)
	x = 100
	fmt.Fprintln(w, "  at return, x =", x)
}

// closureReads: a deferred closure reads the variable when it executes.
func closureReads(w io.Writer) {
	x := 0
	defer func() { fmt.Fprintln(w, "  closure reads x =", x) }()
	x = 100
	fmt.Fprintln(w, "  at return, x =", x)
}

// doubled: a deferred closure can change named results after return.
func doubled() (n int) {
	defer func() { n *= 2 }()
	return 21
}

func loopDefers(w io.Writer) {
	for i := range 3 {
		defer fmt.Fprintf(w, "  i = %d\n", i)
	}
}

func demoDefer(w io.Writer) {
	fmt.Fprintln(w, "  ── LIFO ──")
	lifo(w)

	fmt.Fprintln(w, "\n  ── argument evaluated at the defer statement ──")
	argEval(w)

	fmt.Fprintln(w, "\n  ── closure reads the variable later ──")
	closureReads(w)

	fmt.Fprintln(w, "\n  ── defer can modify named results ──")
	fmt.Fprintf(w, "  doubled() = %d\n", doubled())

	fmt.Fprintln(w, "\n  ── defer in a loop runs at function exit, reversed ──")
	loopDefers(w)
}
