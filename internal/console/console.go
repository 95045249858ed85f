// Package console holds the small formatting helpers every lesson shares so
// their output looks the same.
package console

import (
	"fmt"
	"io"
)

// Banner opens a lesson.
func Banner(w io.Writer, number int, title, intro string) {
	fmt.Fprintf(w, "=== Lesson %d: %s ===\n", number, title)
	fmt.Fprintln(w, intro)
}

// Section starts a sub-topic.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// Sub prints a minor heading inside a section.
func Sub(w io.Writer, title string) {
	fmt.Fprintf(w, "\n  ── %s ──\n", title)
}
