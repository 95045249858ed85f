package menu_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/menu"
)

func noop(io.Writer) {}

func TestNewCatalogKeepsOrder(t *testing.T) {
	c, err := menu.NewCatalog(
		menu.Entry{ID: "2", Title: "two", Action: noop},
		menu.Entry{ID: "10", Title: "ten", Action: noop},
		menu.Entry{ID: "1", Title: "one", Action: noop},
	)
	require.NoError(t, err)

	var ids []string
	for _, e := range c.Entries() {
		ids = append(ids, e.ID)
	}
	if diff := cmp.Diff([]string{"2", "10", "1"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, c.Len())

	e, ok := c.Lookup("10")
	require.True(t, ok)
	assert.Equal(t, "ten", e.Title)

	_, ok = c.Lookup(" 10")
	assert.False(t, ok, "lookup is exact; trimming belongs to the dispatcher")
}

func TestNewCatalogRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []menu.Entry
	}{
		{"empty id", []menu.Entry{{ID: "", Title: "x", Action: noop}}},
		{"untrimmed id", []menu.Entry{{ID: " 1", Title: "x", Action: noop}}},
		{"quit lower", []menu.Entry{{ID: "q", Title: "x", Action: noop}}},
		{"quit upper", []menu.Entry{{ID: "Q", Title: "x", Action: noop}}},
		{"empty title", []menu.Entry{{ID: "1", Title: "", Action: noop}}},
		{"nil action", []menu.Entry{{ID: "1", Title: "x"}}},
		{"duplicate", []menu.Entry{
			{ID: "1", Title: "a", Action: noop},
			{ID: "1", Title: "b", Action: noop},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := menu.NewCatalog(tt.entries...)
			assert.ErrorIs(t, err, menu.ErrInvalidCatalog)
		})
	}
}

func TestMustCatalogPanics(t *testing.T) {
	assert.Panics(t, func() {
		menu.MustCatalog(menu.Entry{ID: "1", Title: "x"})
	})
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := menu.MustCatalog(menu.Entry{ID: "1", Title: "one", Action: noop})

	got := c.Entries()
	got[0].Title = "mutated"

	e, _ := c.Lookup("1")
	assert.Equal(t, "one", e.Title)
}

func TestZeroCatalog(t *testing.T) {
	var c menu.Catalog
	assert.Zero(t, c.Len())
	_, ok := c.Lookup("1")
	assert.False(t, ok)
	assert.Empty(t, c.Entries())
}

func ExampleCatalog_Lookup() {
	c := menu.MustCatalog(
		menu.Entry{ID: "1", Title: "Variables", Action: noop},
		menu.Entry{ID: "2", Title: "Control Flow", Action: noop},
	)
	e, ok := c.Lookup("2")
	fmt.Println(e.Title, ok)
	// Output: Control Flow true
}
