package controlflow

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

func demoIf(w io.Writer) {
	for _, n := range []int{-4, 0, 7} {
		if n < 0 {
			fmt.Fprintf(w, "  %d is negative\n", n)
		} else if n == 0 {
			fmt.Fprintf(w, "  %d is zero\n", n)
		} else {
			fmt.Fprintf(w, "  %d is positive\n", n)
		}
	}

	// The init statement's variables are scoped to the if/else chain.
	if v, err := strconv.Atoi("42"); err == nil {
		fmt.Fprintf(w, "  if v, err := strconv.Atoi(\"42\"); err == nil → v=%d\n", v)
	}

	// There is no ternary operator; if is a statement, not an expression.
	age := 20
	label := "minor"
	if age >= 18 {
		label = "adult"
	}
	fmt.Fprintf(w, "  age %d → %s\n", age, label)
}

func demoFor(w io.Writer) {
	// C-style
	sum := 0
	for i := 1; i <= 5; i++ {
		sum += i
	}
	fmt.Fprintf(w, "  for i := 1; i <= 5; i++ → sum=%d\n", sum)

	// while-style
	n := 27
	steps := 0
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		steps++
	}
	fmt.Fprintf(w, "  for n != 1 (Collatz from 27) → %d steps\n", steps)

	// infinite, exited with break
	i := 0
	for {
		i++
		if i*i > 50 {
			break
		}
	}
	fmt.Fprintf(w, "  for { ... break } → first i with i*i > 50 is %d\n", i)

	// range over an integer (Go 1.22+)
	fmt.Fprint(w, "  for i := range 4 →")
	for i := range 4 {
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)

	// range over a slice gives index and a copy of the element
	langs := []string{"go", "rust", "zig"}
	for i, l := range langs {
		fmt.Fprintf(w, "  langs[%d] = %s\n", i, l)
	}

	// range over a string yields runes and their byte offsets
	fmt.Fprint(w, "  range \"añb\" →")
	for off, r := range "añb" {
		fmt.Fprintf(w, " %d:%c", off, r)
	}
	fmt.Fprintln(w)

	// map iteration order is random; sort keys for stable output
	ages := map[string]int{"carol": 41, "alice": 30, "bob": 25}
	keys := make([]string, 0, len(ages))
	for k := range ages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  ages[%s] = %d\n", k, ages[k])
	}
}

func demoLabels(w io.Writer) {
	grid := [][]int{
		{1, 2, 3},
		{4, -1, 6},
		{7, 8, 9},
	}

outer:
	for r, row := range grid {
		for c, v := range row {
			if v < 0 {
				fmt.Fprintf(w, "  found negative at (%d,%d); break outer\n", r, c)
				break outer
			}
		}
	}

	fmt.Fprint(w, "  odd numbers below 10, skipping multiples of 3:")
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			continue
		}
		if i%3 == 0 {
			continue
		}
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)

rows:
	for r := range 3 {
		for c := range 3 {
			if c > r {
				continue rows
			}
			fmt.Fprintf(w, "  (%d,%d)", r, c)
		}
	}
	fmt.Fprintln(w, "  ← continue rows prints the lower triangle")
}

func demoSwitch(w io.Writer) {
	for _, day := range []string{"sat", "mon", "xyz"} {
		switch day {
		case "sat", "sun":
			fmt.Fprintf(w, "  %s → weekend\n", day)
		case "mon", "tue", "wed", "thu", "fri":
			fmt.Fprintf(w, "  %s → weekday\n", day)
		default:
			fmt.Fprintf(w, "  %s → unknown\n", day)
		}
	}

	// A tagless switch is a clean if/else-if chain.
	for _, score := range []int{95, 72, 40} {
		var grade string
		switch {
		case score >= 90:
			grade = "A"
		case score >= 70:
			grade = "C"
		default:
			grade = "F"
		}
		fmt.Fprintf(w, "  score %d → %s\n", score, grade)
	}

	// fallthrough transfers control into the next case body unconditionally.
	fmt.Fprint(w, "  fallthrough from case 1:")
	switch 1 {
	case 1:
		fmt.Fprint(w, " one")
		fallthrough
	case 2:
		fmt.Fprint(w, " two")
	case 3:
		fmt.Fprint(w, " three")
	}
	fmt.Fprintln(w)
}
