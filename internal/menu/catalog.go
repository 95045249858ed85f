package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultQuitToken ends the menu loop. It is matched case-insensitively.
const DefaultQuitToken = "q"

// ErrInvalidCatalog is returned by NewCatalog for malformed entries.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Action is a lesson body. It prints to w and never fails.
type Action func(w io.Writer)

// Entry is one selectable lesson.
type Entry struct {
	ID     string
	Title  string
	Action Action
}

// Catalog is an ordered, immutable set of entries. The zero value is an
// empty catalog.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog builds a catalog in the order given. IDs must be unique,
// non-blank and must not collide with the quit token.
func NewCatalog(entries ...Entry) (Catalog, error) {
	c := Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		switch {
		case strings.TrimSpace(e.ID) != e.ID || e.ID == "":
			return Catalog{}, fmt.Errorf("%w: entry %d: id %q must be non-empty and trimmed", ErrInvalidCatalog, i, e.ID)
		case strings.EqualFold(e.ID, DefaultQuitToken):
			return Catalog{}, fmt.Errorf("%w: entry %d: id %q is reserved for quit", ErrInvalidCatalog, i, e.ID)
		case e.Title == "":
			return Catalog{}, fmt.Errorf("%w: entry %q: empty title", ErrInvalidCatalog, e.ID)
		case e.Action == nil:
			return Catalog{}, fmt.Errorf("%w: entry %q: nil action", ErrInvalidCatalog, e.ID)
		}
		if _, dup := c.index[e.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Use it for catalogs
// fixed at build time, where a bad entry is a programming mistake.
func MustCatalog(entries ...Entry) Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Entries returns a copy of the entries in catalog order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by exact ID.
func (c Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c Catalog) Len() int { return len(c.entries) }
