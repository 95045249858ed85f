// Package lessons assembles the lesson packages into the menu catalog.
package lessons

import (
	"io"
	"strconv"

	"github.com/marcodamonte/golessons/internal/lessons/collections"
	"github.com/marcodamonte/golessons/internal/lessons/controlflow"
	"github.com/marcodamonte/golessons/internal/lessons/enums"
	"github.com/marcodamonte/golessons/internal/lessons/errhandling"
	"github.com/marcodamonte/golessons/internal/lessons/generics"
	"github.com/marcodamonte/golessons/internal/lessons/lifetimes"
	"github.com/marcodamonte/golessons/internal/lessons/matching"
	"github.com/marcodamonte/golessons/internal/lessons/packages"
	"github.com/marcodamonte/golessons/internal/lessons/structs"
	"github.com/marcodamonte/golessons/internal/lessons/variables"
	"github.com/marcodamonte/golessons/internal/menu"
)

type lesson struct {
	number int
	title  string
	run    func(io.Writer)
}

// all lists the lessons in menu order.
var all = []lesson{
	{variables.Number, variables.Title, variables.Run},
	{controlflow.Number, controlflow.Title, controlflow.Run},
	{structs.Number, structs.Title, structs.Run},
	{enums.Number, enums.Title, enums.Run},
	{matching.Number, matching.Title, matching.Run},
	{collections.Number, collections.Title, collections.Run},
	{packages.Number, packages.Title, packages.Run},
	{errhandling.Number, errhandling.Title, errhandling.Run},
	{generics.Number, generics.Title, generics.Run},
	{lifetimes.Number, lifetimes.Title, lifetimes.Run},
}

// Catalog returns the fixed ten-lesson catalog. Each lesson's number is its
// menu ID.
func Catalog() menu.Catalog {
	entries := make([]menu.Entry, 0, len(all))
	for _, l := range all {
		entries = append(entries, menu.Entry{
			ID:     strconv.Itoa(l.number),
			Title:  l.title,
			Action: menu.Action(l.run),
		})
	}
	return menu.MustCatalog(entries...)
}
