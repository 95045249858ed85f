// Package enums shows how Go models enumerations: typed constants with iota
// for plain enums, and sealed interfaces for variants that carry data.
package enums

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 4
	Title  = "Enums"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Typed constants with iota, explicit values, bit flags, sealed interfaces, Option and Result.")

	console.Section(w, "Typed constants with iota")
	demoIota(w)

	console.Section(w, "Explicit values and bit flags")
	demoValues(w)

	console.Section(w, "Exhaustive switch over an enum")
	demoSwitch(w)

	console.Section(w, "Variants with data — sealed interfaces")
	demoVariants(w)

	console.Section(w, "Methods on enum types")
	demoMethods(w)

	console.Section(w, "Optional values — (T, bool), nil and mo.Option")
	demoOption(w)

	console.Section(w, "Fallible values — (T, error) and mo.Result")
	demoResult(w)
}
