package enums

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"
)

var users = map[int]string{1: "alice", 2: "bob"}

// lookup is Go's native optional: a value plus ok.
func lookup(id int) (string, bool) {
	name, ok := users[id]
	return name, ok
}

// lookupPtr uses nil as "absent". Works, but every caller must nil-check.
func lookupPtr(id int) *string {
	if name, ok := users[id]; ok {
		return &name
	}
	return nil
}

// lookupOpt wraps the same result in mo.Option.
func lookupOpt(id int) mo.Option[string] {
	if name, ok := users[id]; ok {
		return mo.Some(name)
	}
	return mo.None[string]()
}

func demoOption(w io.Writer) {
	for _, id := range []int{1, 3} {
		if name, ok := lookup(id); ok {
			fmt.Fprintf(w, "  lookup(%d) → %q, true\n", id, name)
		} else {
			fmt.Fprintf(w, "  lookup(%d) → \"\", false\n", id)
		}
	}

	if p := lookupPtr(2); p != nil {
		fmt.Fprintf(w, "  lookupPtr(2) → %q\n", *p)
	}
	fmt.Fprintf(w, "  lookupPtr(3) == nil → %v\n", lookupPtr(3) == nil)

	fmt.Fprintln(w, "\n  mo.Option:")
	some := lookupOpt(1)
	none := lookupOpt(3)
	fmt.Fprintf(w, "    lookupOpt(1).IsPresent() = %v, OrElse(\"?\") = %q\n", some.IsPresent(), some.OrElse("?"))
	fmt.Fprintf(w, "    lookupOpt(3).IsPresent() = %v, OrElse(\"?\") = %q\n", none.IsPresent(), none.OrElse("?"))

	upper := some.Map(func(s string) (string, bool) { return s + "!", true })
	fmt.Fprintf(w, "    Some(\"alice\").Map(+\"!\") = %q\n", upper.OrEmpty())
	if v, ok := none.Get(); !ok {
		fmt.Fprintf(w, "    None.Get() = %q, %v\n", v, ok)
	}
}

var ErrNegative = errors.New("negative value")

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse %q: %w", s, ErrNegative)
	}
	return n, nil
}

func parseResult(s string) mo.Result[int] {
	return mo.TupleToResult(parsePositive(s))
}

func demoResult(w io.Writer) {
	for _, s := range []string{"42", "-1", "x"} {
		n, err := parsePositive(s)
		if err != nil {
			fmt.Fprintf(w, "  parsePositive(%q) → error: %v\n", s, err)
			continue
		}
		fmt.Fprintf(w, "  parsePositive(%q) → %d\n", s, n)
	}

	fmt.Fprintln(w, "\n  mo.Result:")
	for _, s := range []string{"21", "-1"} {
		r := parseResult(s).Map(func(n int) (int, error) { return n * 2, nil })
		if r.IsOk() {
			fmt.Fprintf(w, "    parseResult(%q).Map(*2) → Ok(%d)\n", s, r.MustGet())
		} else {
			fmt.Fprintf(w, "    parseResult(%q).Map(*2) → Err(%v), OrElse(0) = %d\n", s, r.Error(), r.OrElse(0))
		}
	}
	fmt.Fprintln(w, "  idiomatic Go returns (T, error); Result types help when values travel through channels or slices")
}
