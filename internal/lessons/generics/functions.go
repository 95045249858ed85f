package generics

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

func maxInt(s []int) int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Largest replaces maxInt, maxFloat64, maxString... with one definition.
// It panics on an empty slice, like indexing would.
func Largest[T cmp.Ordered](s []T) T {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func demoBasics(w io.Writer) {
	fmt.Fprintf(w, "  maxInt([3 9 2])          = %d  (one type only)\n", maxInt([]int{3, 9, 2}))
	fmt.Fprintf(w, "  Largest([3 9 2])         = %d\n", Largest([]int{3, 9, 2}))
	fmt.Fprintf(w, "  Largest([1.5 0.2])       = %g\n", Largest([]float64{1.5, 0.2}))
	fmt.Fprintf(w, "  Largest([pear apple])    = %s\n", Largest([]string{"pear", "apple"}))
	fmt.Fprintf(w, "  explicit Largest[int8]   = %d\n", Largest[int8]([]int8{-1, -7}))
}

// Map transforms every element. T and U may differ.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds left to right starting from init.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

func demoFunctions(w io.Writer) {
	nums := []int{1, 2, 3, 4, 5}

	squares := Map(nums, func(n int) string { return fmt.Sprintf("%d²=%d", n, n*n) })
	fmt.Fprintf(w, "  Map[int, string]    → %v\n", squares)
	fmt.Fprintf(w, "  Filter (evens)      → %v\n", Filter(nums, func(n int) bool { return n%2 == 0 }))
	fmt.Fprintf(w, "  Reduce (sum)        → %d\n", Reduce(nums, 0, func(acc, n int) int { return acc + n }))

	joined := Reduce([]string{"go", "rust", "zig"}, "", func(acc, v string) string {
		if acc == "" {
			return v
		}
		return acc + ", " + v
	})
	fmt.Fprintf(w, "  Reduce (join)       → %q\n", joined)

	lengths := Map(strings.Fields("type parameters are here"), func(s string) int { return len(s) })
	fmt.Fprintf(w, "  Map[string, int]    → %v\n", lengths)
}
