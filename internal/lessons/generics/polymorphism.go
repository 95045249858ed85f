package generics

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

type Shape interface {
	Area() float64
	Name() string
}

type Circle struct{ R float64 }
type Square struct{ S float64 }

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }
func (c Circle) Name() string  { return "circle" }
func (s Square) Area() float64 { return s.S * s.S }
func (s Square) Name() string  { return "square" }

// TotalArea uses an interface: one compiled function, dynamic dispatch, and
// the slice may mix shapes.
func TotalArea(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// LargestBy uses a type parameter: every element has the same static type
// and the result keeps it (no type assertion needed).
func LargestBy[S Shape](shapes []S) S {
	best := shapes[0]
	for _, s := range shapes[1:] {
		if s.Area() > best.Area() {
			best = s
		}
	}
	return best
}

func demoPolymorphism(w io.Writer) {
	mixed := []Shape{Circle{1}, Square{2}, Circle{0.5}}
	fmt.Fprintf(w, "  interface: TotalArea(mixed) = %.3f\n", TotalArea(mixed))

	squares := []Square{{1}, {3}, {2}}
	biggest := LargestBy(squares)
	fmt.Fprintf(w, "  generic:   LargestBy([]Square) = %+v, side is directly usable: %g\n", biggest, biggest.S)

	fmt.Fprintln(w, "  Use interfaces when behavior varies per value;")
	fmt.Fprintln(w, "  use type parameters when the code is the same for every type and types must be preserved.")
}

// Set is an unordered collection of unique comparable values.
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(v T)           { s.m[v] = struct{}{} }
func (s *Set[T]) Contains(v T) bool { _, ok := s.m[v]; return ok }
func (s *Set[T]) Len() int          { return len(s.m) }

func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.m {
		out.Add(v)
	}
	for v := range other.m {
		out.Add(v)
	}
	return out
}

func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.m {
		if other.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// Sorted returns the members ordered by their printed form, which works for
// any comparable T.
func (s *Set[T]) Sorted() []T {
	out := make([]T, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(fmt.Sprint(out[i]), fmt.Sprint(out[j])) < 0
	})
	return out
}

func demoSet(w io.Writer) {
	a := NewSet("go", "rust", "zig") // T inferred as string
	b := NewSet("go", "python")
	fmt.Fprintf(w, "  a ∪ b = %v (len %d)\n", a.Union(b).Sorted(), a.Union(b).Len())
	fmt.Fprintf(w, "  a ∩ b = %v\n", a.Intersect(b).Sorted())

	ints := NewSet(3, 1, 3, 2)
	fmt.Fprintf(w, "  NewSet(3, 1, 3, 2) → %v\n", ints.Sorted())

	empty := NewSet[float64]() // nothing to infer from: explicit instantiation
	fmt.Fprintf(w, "  NewSet[float64]() → len %d\n", empty.Len())
}

func demoPerformance(w io.Writer) {
	notes := []string{
		"Go compiles generics with GC-shape stenciling: one instantiation per",
		"memory shape, with a dictionary for type-specific operations.",
		"All pointer types share one shape, so generic code over pointers",
		"can cost an indirect call, much like an interface.",
		"Value types such as int or float64 get their own specialized code.",
		"Measure with benchmarks before choosing generics for speed.",
	}
	for _, n := range notes {
		fmt.Fprintf(w, "  %s\n", n)
	}
}
