// Package lifetimes covers how long values live in Go: lexical scope,
// escape analysis deciding stack or heap, garbage collection keeping
// anything reachable alive, and the retention bugs that follow from it.
package lifetimes

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 10
	Title  = "Lifetimes"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Scope, escape analysis, garbage collection and what keeps memory alive.")

	console.Section(w, "Scope — where a name is visible")
	demoScope(w)

	console.Section(w, "Stack vs heap — escape analysis")
	demoEscape(w)

	console.Section(w, "No dangling pointers — returning references is safe")
	demoReturningReferences(w)

	console.Section(w, "Values that hold references — slices and strings")
	demoHeldReferences(w)

	console.Section(w, "Methods and receivers that retain data")
	demoReceivers(w)

	console.Section(w, "Closures extend the life of captured variables")
	demoClosures(w)

	console.Section(w, "Package-level variables live for the whole program")
	demoStatic(w)

	console.Section(w, "Resource lifetimes — defer and Close")
	demoResources(w)

	console.Section(w, "Cleanups and runtime.KeepAlive")
	demoKeepAlive(w)
}
