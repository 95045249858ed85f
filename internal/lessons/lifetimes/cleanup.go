package lifetimes

import (
	"fmt"
	"io"
	"runtime"
)

// handle wraps an identifier owned by something outside the Go heap,
// like a file descriptor.
type handle struct {
	fd     int
	closed bool
}

// readFD uses only the fd number. Without KeepAlive the GC could consider h
// dead once fd has been loaded, and a cleanup attached to h could run while
// the descriptor is still in use.
func readFD(h *handle) int {
	fd := h.fd
	n := fd * 10 // stands in for a syscall on fd
	runtime.KeepAlive(h)
	return n
}

func demoKeepAlive(w io.Writer) {
	h := &handle{fd: 3}
	fmt.Fprintf(w, "  readFD(fd=3) → %d, h kept alive until after the call\n", readFD(h))
	h.closed = true
	fmt.Fprintf(w, "  explicit close: closed=%v\n", h.closed)
	fmt.Fprintln(w, "  runtime.AddCleanup(ptr, fn, arg) runs fn(arg) some time after ptr is unreachable.")
	fmt.Fprintln(w, "  It is a safety net only: timing is not guaranteed, so always Close explicitly.")
}
