// Package matching covers the Go constructs that do the work of pattern
// matching: expression and type switches, comma-ok forms, multiple
// assignment, errors.As and regular expressions.
package matching

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 5
	Title  = "Pattern Matching"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"switch, type switches, comma-ok idioms, destructuring and matching on error chains.")

	console.Section(w, "switch on values — several values per case")
	demoValueSwitch(w)

	console.Section(w, "Ranges and guards — tagless switch")
	demoRanges(w)

	console.Section(w, "default as the wildcard")
	demoWildcard(w)

	console.Section(w, "Type switch — matching on the dynamic type")
	demoTypeSwitch(w)

	console.Section(w, "Comma-ok — conditional binding")
	demoCommaOK(w)

	console.Section(w, "Destructuring — multiple assignment and range")
	demoDestructuring(w)

	console.Section(w, "Matching error chains — errors.Is / errors.As")
	demoErrors(w)

	console.Section(w, "Structural matching on text — regexp submatches")
	demoRegexp(w)
}
