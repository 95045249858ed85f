package collections

import (
	"fmt"
	"io"
	"slices"
	"unsafe"
)

// A slice is a 3-word struct (24 bytes on 64-bit):
//
//	+──────────+─────+─────+
//	│  ptr     │ len │ cap │   ← slice header
//	+──────────+─────+─────+
//	     │
//	     ▼
//	[0][1][2][3][4][5]         ← backing array
//
// Several slices can share one backing array; most slice bugs come from that.
func demoInternals(w io.Writer) {
	fmt.Fprintf(w, "  sizeof([]int) = %d bytes (ptr+len+cap)\n", unsafe.Sizeof([]int{}))

	a := []int{1, 2, 3, 4, 5}
	b := a[1:4]
	printS(w, "a", a)
	printS(w, "b = a[1:4]", b)

	b[0] = 99 // writes to a[1]
	fmt.Fprintln(w, "\n  after b[0] = 99:")
	printS(w, "a", a)
	printS(w, "b", b)

	// append within capacity overwrites a's next element.
	b = append(b, 100)
	fmt.Fprintln(w, "\n  after b = append(b, 100) (within cap):")
	printS(w, "a", a)

	// A full slice expression caps the capacity and forces a copy on append.
	c := a[1:3:3]
	c = append(c, -1)
	fmt.Fprintln(w, "\n  c := a[1:3:3]; append(c, -1) reallocates:")
	printS(w, "a", a)
	printS(w, "c", c)
}

func demoOperations(w io.Writer) {
	var s []int // nil slice, ready for append
	for i := range 5 {
		s = append(s, i*10)
	}
	printS(w, "append x5", s)

	s = slices.Insert(s, 2, 15)
	printS(w, "Insert(2, 15)", s)

	s = slices.Delete(s, 0, 1)
	printS(w, "Delete(0, 1)", s)

	// Filter in place: reuse the backing array.
	kept := s[:0]
	for _, v := range s {
		if v%20 != 0 {
			kept = append(kept, v)
		}
	}
	printS(w, "filter v%20!=0", kept)

	r := []int{1, 2, 3, 4}
	slices.Reverse(r)
	printS(w, "Reverse", r)

	u := []int{5, 3, 5, 1, 3}
	slices.Sort(u)
	u = slices.Compact(u)
	printS(w, "Sort+Compact", u)

	fmt.Fprintf(w, "  Contains(u, 3)=%v Index(u, 5)=%d Max(u)=%d\n",
		slices.Contains(u, 3), slices.Index(u, 5), slices.Max(u))

	dst := make([]int, 2)
	n := copy(dst, []int{7, 8, 9})
	fmt.Fprintf(w, "  copy(dst[2], [7 8 9]) = %d → %v\n", n, dst)

	// Two-dimensional slice: each row is its own slice.
	grid := make([][]int, 3)
	for i := range grid {
		grid[i] = make([]int, 3)
		grid[i][i] = 1
	}
	fmt.Fprintf(w, "  identity grid = %v\n", grid)
}

func printS(w io.Writer, label string, s []int) {
	fmt.Fprintf(w, "  %-16s %v  len=%d cap=%d\n", label+":", s, len(s), cap(s))
}
