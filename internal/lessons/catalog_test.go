package lessons_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/lessons"
)

func TestCatalogOrderAndTitles(t *testing.T) {
	type row struct{ ID, Title string }
	want := []row{
		{"1", "Variables and Data Types"},
		{"2", "Functions and Control Flow"},
		{"3", "Structs"},
		{"4", "Enums"},
		{"5", "Pattern Matching"},
		{"6", "Collections"},
		{"7", "Packages and Modules"},
		{"8", "Error Handling"},
		{"9", "Generics"},
		{"10", "Lifetimes"},
	}

	var got []row
	for _, e := range lessons.Catalog().Entries() {
		got = append(got, row{e.ID, e.Title})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestEveryLessonPrintsItsBanner(t *testing.T) {
	for _, e := range lessons.Catalog().Entries() {
		t.Run(e.ID, func(t *testing.T) {
			var buf bytes.Buffer
			require.NotNil(t, e.Action)
			e.Action(&buf)
			assert.Contains(t, buf.String(), fmt.Sprintf("=== Lesson %s: %s ===", e.ID, e.Title))
		})
	}
}

func TestCatalogIsStable(t *testing.T) {
	a, b := lessons.Catalog(), lessons.Catalog()
	require.Equal(t, 10, a.Len())
	for i, e := range a.Entries() {
		assert.Equal(t, e.ID, b.Entries()[i].ID)
	}
}
