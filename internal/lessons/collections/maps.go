package collections

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

func demoStrings(w io.Writer) {
	s := "Здравствуйте"
	fmt.Fprintf(w, "  %q: len=%d bytes, %d runes\n", s, len(s), utf8.RuneCountInString(s))
	fmt.Fprintf(w, "  s[:4] = %q (byte slicing; must land on rune boundaries)\n", s[:4])
	fmt.Fprintf(w, "  []rune(s)[:2] = %q\n", string([]rune(s)[:2]))

	// Concatenation in a loop copies every time; Builder grows a buffer.
	var b strings.Builder
	for i, word := range []string{"tic", "tac", "toe"} {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(word)
	}
	fmt.Fprintf(w, "  strings.Builder → %q\n", b.String())

	fmt.Fprintf(w, "  Fields(\"  a b  c \") = %q\n", strings.Fields("  a b  c "))
	fmt.Fprintf(w, "  Split(\"a,b,,c\", \",\") = %q\n", strings.Split("a,b,,c", ","))
	fmt.Fprintf(w, "  ToUpper / Repeat / Contains → %s %s %v\n",
		strings.ToUpper("go"), strings.Repeat("ab", 3), strings.Contains("gopher", "ph"))
	fmt.Fprintf(w, "  Replace(\"oink oink\", \"k\", \"ky\", 1) = %q\n", strings.Replace("oink oink", "k", "ky", 1))
}

func demoMaps(w io.Writer) {
	scores := map[string]int{"blue": 10, "yellow": 50}
	scores["red"] = 25       // insert
	scores["blue"] += 5      // update in place
	delete(scores, "yellow") // delete; no-op if absent
	_, hasYellow := scores["yellow"]

	fmt.Fprintf(w, "  len=%d  blue=%d  red=%d  yellow present=%v\n",
		len(scores), scores["blue"], scores["red"], hasYellow)
	fmt.Fprintf(w, "  missing key reads the zero value: scores[\"green\"] = %d\n", scores["green"])

	// Word count: the zero value makes the increment idiom work.
	counts := map[string]int{}
	for _, word := range strings.Fields("hello world wonderful world") {
		counts[word]++
	}
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "  count[%s] = %d\n", k, counts[k])
	}

	// Maps are references: a nil map reads fine but panics on write.
	var nilMap map[string]int
	fmt.Fprintf(w, "  nil map read → %d (writing would panic)\n", nilMap["x"])

	// Map of slices.
	byLen := map[int][]string{}
	for _, s := range []string{"go", "c", "zig", "js", "lua"} {
		byLen[len(s)] = append(byLen[len(s)], s)
	}
	for _, k := range slices.Sorted(maps.Keys(byLen)) {
		fmt.Fprintf(w, "  byLen[%d] = %v\n", k, byLen[k])
	}

	clone := maps.Clone(scores)
	clone["blue"] = 0
	fmt.Fprintf(w, "  maps.Clone is independent: original blue=%d\n", scores["blue"])
}

func demoSets(w io.Writer) {
	set := func(items ...string) map[string]struct{} {
		m := make(map[string]struct{}, len(items))
		for _, it := range items {
			m[it] = struct{}{}
		}
		return m
	}
	a := set("go", "rust", "zig")
	b := set("go", "python")

	var union, inter, diff []string
	for k := range a {
		if _, ok := b[k]; ok {
			inter = append(inter, k)
		} else {
			diff = append(diff, k)
		}
		union = append(union, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			union = append(union, k)
		}
	}
	slices.Sort(union)
	slices.Sort(inter)
	slices.Sort(diff)
	fmt.Fprintf(w, "  a ∪ b = %v\n", union)
	fmt.Fprintf(w, "  a ∩ b = %v\n", inter)
	fmt.Fprintf(w, "  a − b = %v\n", diff)
}

// demoOrdered: Go has no tree map in the standard library. Keep a map and
// sort its keys when order matters, or keep a sorted slice.
func demoOrdered(w io.Writer) {
	ranks := map[int]string{3: "bronze", 1: "gold", 2: "silver"}
	for _, k := range slices.Sorted(maps.Keys(ranks)) {
		fmt.Fprintf(w, "  %d → %s\n", k, ranks[k])
	}

	sorted := []int{10, 20, 40}
	i, found := slices.BinarySearch(sorted, 30)
	fmt.Fprintf(w, "  BinarySearch(%v, 30) → insert at %d, found=%v\n", sorted, i, found)
	sorted = slices.Insert(sorted, i, 30)
	fmt.Fprintf(w, "  after insert → %v (still sorted)\n", sorted)
}
