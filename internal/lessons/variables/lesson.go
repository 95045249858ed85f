// Package variables covers declarations, zero values, basic types,
// conversions and constants.
package variables

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 1
	Title  = "Variables and Data Types"
)

// Run prints the lesson to w.
func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Declarations, zero values, shadowing, basic types, conversions and constants.")

	console.Section(w, "Declarations — var, :=, zero values")
	demoDeclarations(w)

	console.Section(w, "Shadowing — a new variable with the same name")
	demoShadowing(w)

	console.Section(w, "Basic types — sizes and limits")
	demoBasicTypes(w)

	console.Section(w, "Conversions — always explicit")
	demoConversions(w)

	console.Section(w, "Constants — typed, untyped and package-level")
	demoConstants(w)
}
