package errhandling

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// Must turns (v, err) into v, panicking on error. Use it only where failure
// is a programming mistake, like parsing a constant at start-up.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var wordRE = regexp.MustCompile(`^\w+$`) // stdlib's own MustXxx

func demoMust(w io.Writer) {
	fmt.Fprintf(w, "  Must(strconv.Atoi(\"12\")) = %d\n", Must(strconv.Atoi("12")))

	err := capture(func() { Must(strconv.Atoi("twelve")) })
	fmt.Fprintf(w, "  Must(strconv.Atoi(\"twelve\")) → %v\n", err)

	fmt.Fprintf(w, "  regexp.MustCompile(`^\\w+$`).MatchString(\"gopher\") = %v\n", wordRE.MatchString("gopher"))
	fmt.Fprintln(w, "  Prefer returning errors; reserve Must for package-level initialization.")
}

func demoPractices(w io.Writer) {
	rules := []string{
		"handle an error once: either log it or return it, not both",
		"add context with fmt.Errorf(\"doing x: %w\", err); no \"failed to\" prefixes",
		"lowercase messages, no trailing punctuation",
		"export sentinels or types only when callers must branch on them",
		"return a plain nil error, never a typed nil pointer",
		"recover only at boundaries: goroutine tops, HTTP handlers, plugin calls",
	}
	for i, r := range rules {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}

	fmt.Fprintln(w, "\n  Libraries: the standard errors package covers most needs since Go 1.20.")
	fmt.Fprintln(w, "  go.uber.org/multierr and hashicorp/go-multierror predate errors.Join;")
	fmt.Fprintln(w, "  github.com/pkg/errors predates %w and added stack traces.")
}
