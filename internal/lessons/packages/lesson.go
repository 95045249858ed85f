// Package packages covers Go's code organization: packages, visibility,
// internal directories, init order, imports, modules and workspaces.
package packages

import (
	"io"

	"github.com/marcodamonte/golessons/internal/console"
)

const (
	Number = 7
	Title  = "Packages and Modules"
)

func Run(w io.Writer) {
	console.Banner(w, Number, Title,
		"Packages, modules, visibility, imports, init order, third-party modules and workspaces.")

	console.Section(w, "Modules and packages")
	demoConcepts(w)

	console.Section(w, "Visibility — the first letter decides")
	demoVisibility(w)

	console.Section(w, "internal/ directories")
	demoInternal(w)

	console.Section(w, "Imports — paths, aliases, blank and dot imports")
	demoImports(w)

	console.Section(w, "Initialization order — vars, then init()")
	demoInit(w)

	console.Section(w, "Third-party modules — github.com/google/uuid")
	demoThirdParty(w)

	console.Section(w, "Workspaces — go.work")
	demoWorkspaces(w)

	console.Section(w, "Putting it together — the inventory package")
	demoInventory(w)
}
