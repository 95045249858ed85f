package packages

import (
	"fmt"
	"io"
	stdstrings "strings"
)

func demoConcepts(w io.Writer) {
	lines := []string{
		"module    a tree of packages versioned together; root has go.mod",
		"package   one directory of .go files sharing a package clause",
		"import    path = module path + directory, e.g. github.com/me/app/internal/store",
		"main      package main with func main() builds an executable",
		"go.sum    checksums of every module version in the build",
	}
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}

	fmt.Fprintln(w, "\n  go.mod of this program, abbreviated:")
	gomod := `module github.com/marcodamonte/golessons

go 1.24

require (
	github.com/google/uuid v1.6.0
	github.com/spf13/cobra v1.8.1
	go.uber.org/zap v1.27.1
)`
	for _, l := range stdstrings.Split(gomod, "\n") {
		fmt.Fprintf(w, "    %s\n", l)
	}
	fmt.Fprintln(w, "  go mod tidy adds missing and removes unused requirements")
}

// ExportedCounter is visible to importers; hits is not.
type ExportedCounter struct {
	Name string
	hits int
}

func (c *ExportedCounter) Hit()      { c.hits++ }
func (c *ExportedCounter) Hits() int { return c.hits }

func demoVisibility(w io.Writer) {
	c := &ExportedCounter{Name: "visits"}
	c.Hit()
	c.Hit()
	fmt.Fprintf(w, "  %s: Hits()=%d\n", c.Name, c.Hits())
	fmt.Fprintln(w, "  Upper-case identifiers (ExportedCounter, Name, Hits) are exported.")
	fmt.Fprintln(w, "  Lower-case ones (hits, demoVisibility) are private to the package.")
	fmt.Fprintln(w, "  There is no per-type privacy: the whole package sees everything.")
}

func demoInternal(w io.Writer) {
	tree := []string{
		"golessons/",
		"├── main.go",
		"└── internal/",
		"    ├── menu/           importable only from golessons/...",
		"    └── lessons/",
		"        └── packages/",
		"            └── inventory/",
	}
	for _, l := range tree {
		fmt.Fprintf(w, "  %s\n", l)
	}
	fmt.Fprintln(w, "  The go tool refuses imports of .../internal/... from outside the parent tree.")
}

func demoImports(w io.Writer) {
	fmt.Fprintln(w, `  import "strings"                  // by path; the name is the package clause`)
	fmt.Fprintln(w, `  import stdstrings "strings"       // alias, used in this file`)
	fmt.Fprintln(w, `  import _ "image/png"              // blank: run init() for side effects only`)
	fmt.Fprintln(w, `  import . "math"                   // dot: discouraged outside tests`)
	fmt.Fprintf(w, "  stdstrings.ToUpper(\"alias works\") = %s\n", stdstrings.ToUpper("alias works"))
	fmt.Fprintln(w, "  Unused imports are a compile error, as are import cycles.")
}
