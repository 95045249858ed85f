package collections

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
)

type Book struct {
	Title string
	Year  int
	Genre string
}

var library = []Book{
	{"Dune", 1965, "sci-fi"},
	{"Neuromancer", 1984, "sci-fi"},
	{"Emma", 1815, "classic"},
	{"Hyperion", 1989, "sci-fi"},
	{"Persuasion", 1817, "classic"},
}

func demoLo(w io.Writer) {
	titles := lo.Map(library, func(b Book, _ int) string { return b.Title })
	fmt.Fprintf(w, "  lo.Map → titles %v\n", titles)

	modern := lo.Filter(library, func(b Book, _ int) bool { return b.Year > 1900 })
	fmt.Fprintf(w, "  lo.Filter(Year > 1900) → %d books\n", len(modern))

	byGenre := lo.GroupBy(library, func(b Book) string { return b.Genre })
	for _, g := range slices.Sorted(maps.Keys(byGenre)) {
		names := lo.Map(byGenre[g], func(b Book, _ int) string { return b.Title })
		fmt.Fprintf(w, "  lo.GroupBy[%s] → %v\n", g, names)
	}

	years := lo.Reduce(library, func(acc int, b Book, _ int) int { return acc + b.Year }, 0)
	fmt.Fprintf(w, "  lo.Reduce(sum of years) → %d\n", years)

	fmt.Fprintf(w, "  lo.Uniq → %v\n", lo.Uniq([]string{"a", "b", "a", "c", "b"}))
	fmt.Fprintf(w, "  lo.Chunk(1..7, 3) → %v\n", lo.Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3))

	first, ok := lo.Find(library, func(b Book) bool { return strings.HasPrefix(b.Title, "H") })
	fmt.Fprintf(w, "  lo.Find(title starts with H) → %s, %v\n", first.Title, ok)

	fmt.Fprintf(w, "  lo.Contains(titles, \"Emma\") → %v\n", lo.Contains(titles, "Emma"))
	fmt.Fprintln(w, "  a plain for loop is just as idiomatic; reach for lo when it reads better")
}

func demoCompare(w io.Writer) {
	// Arrays of comparable elements support ==; slices and maps do not.
	fmt.Fprintf(w, "  [3]int{1,2,3} == [3]int{1,2,3} → %v\n", [3]int{1, 2, 3} == [3]int{1, 2, 3})

	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	fmt.Fprintf(w, "  slices.Equal(a, b) → %v\n", slices.Equal(a, b))

	var nilS []int
	empty := []int{}
	fmt.Fprintf(w, "  reflect.DeepEqual(nil, []int{}) → %v  ← surprising\n", reflect.DeepEqual(nilS, empty))
	fmt.Fprintf(w, "  cmp.Equal(nil, []int{}) → %v\n", cmp.Equal(nilS, empty))
	fmt.Fprintf(w, "  cmp.Equal(nil, []int{}, cmpopts.EquateEmpty()) → %v\n",
		cmp.Equal(nilS, empty, cmpopts.EquateEmpty()))

	x := []string{"b", "a", "c"}
	y := []string{"c", "b", "a"}
	sortStrings := cmpopts.SortSlices(func(p, q string) bool { return p < q })
	fmt.Fprintf(w, "  cmp.Equal(%v, %v, SortSlices) → %v\n", x, y, cmp.Equal(x, y, sortStrings))

	old := Book{"Dune", 1965, "sci-fi"}
	edited := Book{"Dune", 1966, "sci-fi"}
	diff := cmp.Diff(old, edited)
	fmt.Fprintf(w, "  cmp.Diff(book, edited) mentions Year → %v\n", strings.Contains(diff, "Year"))
}

func demoPerformance(w io.Writer) {
	// Preallocating capacity avoids repeated growth.
	grown := []int{}
	caps := map[int]bool{}
	for i := range 1000 {
		grown = append(grown, i)
		caps[cap(grown)] = true
	}
	fmt.Fprintf(w, "  appending 1000 ints without prealloc → %d distinct capacities\n", len(caps))

	pre := make([]int, 0, 1000)
	for i := range 1000 {
		pre = append(pre, i)
	}
	fmt.Fprintf(w, "  make([]int, 0, 1000) → cap stays %d\n", cap(pre))

	m := make(map[string]int, 64) // size hint for maps
	fmt.Fprintf(w, "  make(map[string]int, 64) → len=%d (hint only)\n", len(m))

	// Ranging copies each element; index to mutate in place.
	books := slices.Clone(library[:2])
	for _, b := range books {
		b.Year = 0 // modifies the copy
	}
	fmt.Fprintf(w, "  for _, b := range books { b.Year = 0 } → books[0].Year=%d\n", books[0].Year)
	for i := range books {
		books[i].Year = 0
	}
	fmt.Fprintf(w, "  for i := range books { books[i].Year = 0 } → books[0].Year=%d\n", books[0].Year)
	fmt.Fprintf(w, "  library untouched thanks to slices.Clone → library[0].Year=%d\n", library[0].Year)
}
