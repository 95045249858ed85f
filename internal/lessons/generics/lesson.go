// Package generics covers type parameters on functions and types,
// constraints, generic containers and when to prefer interfaces.
package generics

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 9
	Title  = "Generics"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Type parameters, constraints, generic types and methods, and generics vs interfaces.")

	console.Section(w, "Why generics — one function instead of three")
	demoBasics(w)

	console.Section(w, "Generic functions — Map, Filter, Reduce")
	demoFunctions(w)

	console.Section(w, "Generic types — Stack[T], Pair[K, V]")
	demoTypes(w)

	console.Section(w, "Optional[T] — a generic sum type")
	demoOptional(w)

	console.Section(w, "Constraints — any, comparable, cmp.Ordered, ~T, unions")
	demoConstraints(w)

	console.Section(w, "Method constraints and pointer receivers")
	demoMethodConstraints(w)

	console.Section(w, "Generics vs interfaces")
	demoPolymorphism(w)

	console.Section(w, "Set[T] and type inference")
	demoSet(w)

	console.Section(w, "Performance notes")
	demoPerformance(w)
}
