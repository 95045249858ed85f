// Package errhandling covers errors as values, panic and recover,
// propagation with wrapping, custom error types, errors.Is/As/Join and the
// conventions that keep error handling readable.
package errhandling

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 8
	Title  = "Error Handling"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Errors as values, panic/recover, wrapping, custom types, Is/As/Join and conventions.")

	console.Section(w, "Two kinds of failure — error values and panics")
	demoKinds(w)

	console.Section(w, "panic and recover")
	demoPanic(w)

	console.Section(w, "(T, error) — the return convention")
	demoReturns(w)

	console.Section(w, "Propagation — wrap with %w at each layer")
	demoPropagation(w)

	console.Section(w, "Sentinel errors and errors.Is")
	demoSentinel(w)

	console.Section(w, "Custom error types and errors.As")
	demoCustomTypes(w)

	console.Section(w, "Converting errors between layers — OpError")
	demoConversion(w)

	console.Section(w, "Custom Is() and errors.Join")
	demoChaining(w)

	console.Section(w, "Must — unwrap or panic")
	demoMust(w)

	console.Section(w, "Conventions and libraries")
	demoPractices(w)
}
