package matching

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"
)

func demoCommaOK(w io.Writer) {
	stock := map[string]int{"apple": 3, "pear": 0}

	// Map lookup: ok separates "missing" from "present with zero value".
	for _, k := range []string{"apple", "pear", "plum"} {
		if n, ok := stock[k]; ok {
			fmt.Fprintf(w, "  stock[%q] = %d (present)\n", k, n)
		} else {
			fmt.Fprintf(w, "  stock[%q] missing\n", k)
		}
	}

	// Type assertion: ok instead of a panic.
	var v any = "text"
	if s, ok := v.(string); ok {
		fmt.Fprintf(w, "  v.(string) → %q, true\n", s)
	}
	_, ok := v.(int)
	fmt.Fprintf(w, "  v.(int) ok = %v\n", ok)

	// Channel receive: ok is false once the channel is closed and drained.
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)
	for {
		n, ok := <-ch
		if !ok {
			fmt.Fprintln(w, "  channel closed")
			break
		}
		fmt.Fprintf(w, "  received %d\n", n)
	}

	// A loop that pops until empty plays the role of while-let.
	stack := []int{1, 2, 3}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(w, "  pop %d\n", top)
	}
}

type Pair struct {
	Key   string
	Value int
}

func demoDestructuring(w io.Writer) {
	// Multiple assignment from a function.
	q, r := 17/5, 17%5
	fmt.Fprintf(w, "  q, r := 17/5, 17%%5 → %d, %d\n", q, r)

	// Struct "destructuring" is explicit field access.
	p := Point{X: 3, Y: -1}
	x, y := p.X, p.Y
	fmt.Fprintf(w, "  x, y := p.X, p.Y → %d, %d\n", x, y)

	// range destructures index/value and key/value.
	for i, c := range []string{"a", "b"} {
		fmt.Fprintf(w, "  index %d value %s\n", i, c)
	}

	m := map[string]int{"b": 2, "a": 1, "c": 3}
	pairs := make([]Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	for _, kv := range pairs {
		fmt.Fprintf(w, "  key %s value %d\n", kv.Key, kv.Value)
	}

	// Function parameters can be anything; a helper that takes a Pair pulls
	// its fields apart the same way.
	printPair := func(pr Pair) { fmt.Fprintf(w, "  printPair: %s=%d\n", pr.Key, pr.Value) }
	printPair(pairs[0])
}

type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return e.Name + " not found" }

func open(name string) error {
	switch name {
	case "missing.txt":
		return fmt.Errorf("open: %w", &NotFoundError{Name: name})
	case "secret.txt":
		return fmt.Errorf("open %s: %w", name, fs.ErrPermission)
	}
	return nil
}

// demoErrors: errors.Is matches a value anywhere in the chain, errors.As
// matches a type and binds it.
func demoErrors(w io.Writer) {
	for _, name := range []string{"ok.txt", "missing.txt", "secret.txt"} {
		err := open(name)
		var nf *NotFoundError
		switch {
		case err == nil:
			fmt.Fprintf(w, "  %s → ok\n", name)
		case errors.As(err, &nf):
			fmt.Fprintf(w, "  %s → not found (bound Name=%q)\n", name, nf.Name)
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(w, "  %s → permission denied\n", name)
		default:
			fmt.Fprintf(w, "  %s → %v\n", name, err)
		}
	}
}

var dateRE = regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})$`)

func demoRegexp(w io.Writer) {
	for _, s := range []string{"2024-02-29", "24-2-29"} {
		m := dateRE.FindStringSubmatch(s)
		if m == nil {
			fmt.Fprintf(w, "  %q → no match\n", s)
			continue
		}
		year := m[dateRE.SubexpIndex("year")]
		month := m[dateRE.SubexpIndex("month")]
		day := m[dateRE.SubexpIndex("day")]
		fmt.Fprintf(w, "  %q → year=%s month=%s day=%s\n", s, year, month, day)
	}
}
