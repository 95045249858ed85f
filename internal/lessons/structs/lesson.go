// Package structs covers struct types, methods, constructors, visibility,
// embedding and struct tags.
package structs

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 3
	Title  = "Structs"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Defining and building structs, methods, constructors, embedding and tags.")

	console.Section(w, "Definition, literals and zero values")
	demoDefinition(w)

	console.Section(w, "Anonymous structs, defined types over basics, empty struct")
	demoShapes(w)

	console.Section(w, "Methods — value vs pointer receivers")
	demoMethods(w)

	console.Section(w, "Constructors — NewXxx functions")
	demoConstructors(w)

	console.Section(w, "Visibility — exported vs unexported fields")
	demoVisibility(w)

	console.Section(w, "Copies and \"update syntax\"")
	demoCopies(w)

	console.Section(w, "Embedding — composition with promoted fields")
	demoEmbedding(w)

	console.Section(w, "Struct tags — JSON and YAML")
	demoTags(w)
}
