package lifetimes

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// makeAccumulators returns closures that share one captured variable.
func makeAccumulators() (add func(int), total func() int) {
	sum := 0
	add = func(n int) { sum += n }
	total = func() int { return sum }
	return add, total
}

func demoClosures(w io.Writer) {
	add, total := makeAccumulators()
	add(5)
	add(7)
	fmt.Fprintf(w, "  shared captured sum after add(5), add(7): %d\n", total())

	// Since Go 1.22 each loop iteration has its own variable.
	var fns []func() int
	for i := range 3 {
		fns = append(fns, func() int { return i })
	}
	var got []int
	for _, f := range fns {
		got = append(got, f())
	}
	fmt.Fprintf(w, "  closures created in a loop return %v\n", got)

	// Before 1.22 the three-clause loop shared i; the usual fix was i := i.
	fmt.Fprintln(w, "  (before Go 1.22 the same code returned [3 3 3])")
}

// registry is a package-level value: it lives until the program exits and
// keeps everything stored in it reachable.
var registry = map[string]string{}

const appName = "golessons" // constants have no storage lifetime at all

// greeting is computed once at initialization and lives forever.
var greeting = strings.ToUpper(appName[:1]) + appName[1:]

func demoStatic(w io.Writer) {
	registry["lesson"] = "lifetimes"
	fmt.Fprintf(w, "  appName = %q (const), greeting = %q (package var)\n", appName, greeting)
	fmt.Fprintf(w, "  registry holds %d entry; nothing in it is ever collected\n", len(registry))
	fmt.Fprintln(w, "  Unbounded package-level maps and caches are the most common Go memory leak.")
	delete(registry, "lesson")
}

// resource logs its lifecycle so the order is visible.
type resource struct {
	name string
	log  *[]string
}

func open(name string, log *[]string) (*resource, error) {
	if name == "" {
		return nil, errors.New("open: empty name")
	}
	*log = append(*log, "open "+name)
	return &resource{name: name, log: log}, nil
}

func (r *resource) Close() error {
	*r.log = append(*r.log, "close "+r.name)
	return nil
}

func useTwo(log *[]string) error {
	a, err := open("a", log)
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := open("b", log)
	if err != nil {
		return err
	}
	defer b.Close()

	*log = append(*log, "use a and b")
	return nil
}

func demoResources(w io.Writer) {
	var log []string
	_ = useTwo(&log)
	for _, l := range log {
		fmt.Fprintf(w, "  %s\n", l)
	}
	fmt.Fprintln(w, "  Memory is managed by the GC; files, locks and connections are not.")
	fmt.Fprintln(w, "  Tie them to a scope with defer x.Close() right after acquiring them.")
}
