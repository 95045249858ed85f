package generics

import (
	"fmt"
	"io"
)

// Stack is a LIFO backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// Pair has two type parameters.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func MakePair[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

func (p Pair[K, V]) String() string { return fmt.Sprintf("(%v, %v)", p.Key, p.Value) }

// Swap changes the type arguments, so it is a function: methods cannot
// declare type parameters of their own.
func Swap[K, V comparable](p Pair[K, V]) Pair[V, K] { return Pair[V, K]{Key: p.Value, Value: p.Key} }

func demoTypes(w io.Writer) {
	var st Stack[int]
	for _, v := range []int{1, 2, 3} {
		st.Push(v)
	}
	top, _ := st.Peek()
	fmt.Fprintf(w, "  Stack[int] after 1,2,3: len=%d peek=%d\n", st.Len(), top)
	fmt.Fprint(w, "  pop:")
	for st.Len() > 0 {
		v, _ := st.Pop()
		fmt.Fprintf(w, " %d", v)
	}
	_, ok := st.Pop()
	fmt.Fprintf(w, "  then Pop() ok=%v\n", ok)

	var words Stack[string]
	words.Push("hello")
	fmt.Fprintf(w, "  Stack[string] is a different type: %T\n", words)

	p := MakePair("answer", 42)
	fmt.Fprintf(w, "  MakePair(\"answer\", 42) = %v  type %T\n", p, p)
	fmt.Fprintf(w, "  Swap → %v\n", Swap(p))
}

// Optional is a hand-written generic sum type: a value or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }
func None[T any]() Optional[T]    { return Optional[T]{} }

func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// FindFirst returns the first match, if any.
func FindFirst[T any](s []T, pred func(T) bool) Optional[T] {
	for _, v := range s {
		if pred(v) {
			return Some(v)
		}
	}
	return None[T]()
}

func demoOptional(w io.Writer) {
	nums := []int{3, 8, 11}
	even := FindFirst(nums, func(n int) bool { return n%2 == 0 })
	big := FindFirst(nums, func(n int) bool { return n > 100 })
	fmt.Fprintf(w, "  first even   → %v\n", even)
	fmt.Fprintf(w, "  first > 100  → %v, OrElse(-1) = %d\n", big, big.OrElse(-1))
	fmt.Fprintf(w, "  None[string]() → %v\n", None[string]())
}
