// Package controlflow covers function declarations, closures and every
// control structure Go has: if, for, switch and defer.
package controlflow

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 2
	Title  = "Functions and Control Flow"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Function signatures, closures, if, for, switch, labels and defer.")

	console.Section(w, "Functions — parameters, multiple and named returns")
	demoFunctions(w)

	console.Section(w, "Function values and closures")
	demoClosures(w)

	console.Section(w, "if — with an init statement")
	demoIf(w)

	console.Section(w, "for — the only loop keyword")
	demoFor(w)

	console.Section(w, "break / continue with labels")
	demoLabels(w)

	console.Section(w, "switch — no implicit fallthrough")
	demoSwitch(w)

	console.Section(w, "defer — LIFO, arguments evaluated immediately")
	demoDefer(w)
}
