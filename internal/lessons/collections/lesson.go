// Package collections covers slices, strings, maps and sets, ordered
// iteration, the slices/maps packages, github.com/samber/lo helpers and
// comparing collections.
package collections

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 6
	Title  = "Collections"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Slices, strings, maps, sets, ordered iteration, helpers and comparison.")

	console.Section(w, "Slices — header {ptr, len, cap}, shared backing array")
	demoInternals(w)

	console.Section(w, "Slices — append, insert, delete, filter")
	demoOperations(w)

	console.Section(w, "Strings — bytes, runes and strings.Builder")
	demoStrings(w)

	console.Section(w, "Maps — insert, lookup, update, delete")
	demoMaps(w)

	console.Section(w, "Sets — map[T]struct{}")
	demoSets(w)

	console.Section(w, "Ordered maps and sets — sort the keys")
	demoOrdered(w)

	console.Section(w, "Functional helpers — github.com/samber/lo")
	demoLo(w)

	console.Section(w, "Comparing collections — ==, reflect.DeepEqual, go-cmp")
	demoCompare(w)

	console.Section(w, "Performance — preallocate, avoid aliasing surprises")
	demoPerformance(w)
}
