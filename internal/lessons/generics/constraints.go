package generics

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

func Equal[T comparable](a, b T) bool { return a == b }

// Number is a union constraint. ~ admits defined types whose underlying
// type is listed. Unions can only be used as constraints, not as variable
// types.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

type Celsius float64

func Clamp[T cmp.Ordered](v, lo, hi T) T { return min(max(v, lo), hi) }

func demoConstraints(w io.Writer) {
	fmt.Fprintf(w, "  comparable: Equal(1, 1)=%v Equal(\"a\", \"b\")=%v\n", Equal(1, 1), Equal("a", "b"))
	fmt.Fprintf(w, "  cmp.Ordered: Clamp(15, 0, 10)=%d Clamp(\"m\", \"a\", \"k\")=%q\n", Clamp(15, 0, 10), Clamp("m", "a", "k"))
	fmt.Fprintf(w, "  Number union: Sum([1 2 3])=%d Sum([1.5 2.5])=%g\n", Sum([]int{1, 2, 3}), Sum([]float64{1.5, 2.5}))
	temps := []Celsius{20.5, 22, 19.5}
	fmt.Fprintf(w, "  ~float64 admits Celsius: Sum(%v) = %v (%T)\n", temps, Sum(temps), Sum(temps))
	fmt.Fprintln(w, "  slices (not comparable) cannot be used with Equal: compile error")
}

// Stringer-style constraint: T must have the method.
type Labeler interface {
	Label() string
}

type Product struct {
	SKU   string
	Price int
}

func (p Product) Label() string { return p.SKU + "@" + strconv.Itoa(p.Price) }

func Labels[T Labeler](items []T) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return strings.Join(out, ", ")
}

// Setter[T] requires a pointer receiver method. PT is constrained to be *T
// so New can allocate a T and call the method on it.
type Setter[T any] interface {
	*T
	Set(string)
}

type Flag struct{ value string }

func (f *Flag) Set(s string) { f.value = s }

func ParseAll[T any, PT Setter[T]](inputs []string) []T {
	out := make([]T, len(inputs))
	for i, in := range inputs {
		PT(&out[i]).Set(in)
	}
	return out
}

// SortBy combines a type parameter with a key function.
func SortBy[T any, K cmp.Ordered](s []T, key func(T) K) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

func demoMethodConstraints(w io.Writer) {
	items := []Product{{"pen", 2}, {"book", 12}, {"mug", 7}}
	fmt.Fprintf(w, "  Labels[Product] → %s\n", Labels(items))

	byPrice := SortBy(items, func(p Product) int { return p.Price })
	fmt.Fprintf(w, "  SortBy(price)   → %s\n", Labels(byPrice))

	flags := ParseAll[Flag]([]string{"-v", "-q"})
	fmt.Fprintf(w, "  ParseAll[Flag] → %d flags, first=%q\n", len(flags), flags[0].value)
}
