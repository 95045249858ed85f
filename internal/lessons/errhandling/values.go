package errhandling

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse port %q: %w", s, err)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("parse port %q: out of range", s)
	}
	return n, nil
}

func demoReturns(w io.Writer) {
	for _, in := range []string{"8080", " 443 ", "http", "70000"} {
		port, err := parsePort(in)
		if err != nil {
			fmt.Fprintf(w, "  parsePort(%q) → error: %v\n", in, err)
			continue
		}
		fmt.Fprintf(w, "  parsePort(%q) → %d\n", in, port)
	}
	fmt.Fprintln(w, "  Check err first; the other results are meaningless when err != nil.")
}

// Three layers; each adds what it knows and passes the cause along.
func readConfig(path string) ([]byte, error) {
	if path == "/etc/app.yaml" {
		return []byte("port: 8080"), nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func loadSettings(path string) (map[string]string, error) {
	raw, err := readConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	k, v, ok := strings.Cut(string(raw), ": ")
	if !ok {
		return nil, fmt.Errorf("load settings: malformed line %q", raw)
	}
	return map[string]string{k: v}, nil
}

// startServer returns the configured port.
func startServer(path string) (string, error) {
	settings, err := loadSettings(path)
	if err != nil {
		return "", fmt.Errorf("start server: %w", err)
	}
	port, ok := settings["port"]
	if !ok {
		return "", fmt.Errorf("start server: %w", ErrNotFound)
	}
	return port, nil
}

func demoPropagation(w io.Writer) {
	_, err := startServer("/missing.yaml")
	fmt.Fprintf(w, "  error: %v\n", err)

	// Unwrap peels exactly one layer.
	for e, depth := err, 0; e != nil; e, depth = errors.Unwrap(e), depth+1 {
		fmt.Fprintf(w, "  %s%T\n", strings.Repeat("  ", depth), e)
	}

	fmt.Fprintf(w, "  errors.Is(err, fs.ErrNotExist) = %v\n", errors.Is(err, fs.ErrNotExist))
	var pe *fs.PathError
	if errors.As(err, &pe) {
		fmt.Fprintf(w, "  errors.As(*fs.PathError) → Op=%s Path=%s\n", pe.Op, pe.Path)
	}

	// %v instead of %w hides the cause on purpose.
	opaque := fmt.Errorf("start server: %v", fs.ErrNotExist)
	fmt.Fprintf(w, "  with %%v: errors.Is(..., fs.ErrNotExist) = %v\n", errors.Is(opaque, fs.ErrNotExist))

	port, err := startServer("/etc/app.yaml")
	fmt.Fprintf(w, "  startServer(\"/etc/app.yaml\") → port=%s, err=%v\n", port, err)
}

// Sentinel errors are package-level values compared with errors.Is.
// Name them Err<Condition>; keep messages lowercase without punctuation.
var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)

func findUser(id int) (string, error) {
	switch id {
	case 1:
		return "alice", nil
	case 2:
		return "", ErrPermission
	default:
		return "", fmt.Errorf("find user %d: %w", id, ErrNotFound)
	}
}

func demoSentinel(w io.Writer) {
	for _, id := range []int{1, 2, 99} {
		name, err := findUser(id)
		switch {
		case err == nil:
			fmt.Fprintf(w, "  id=%d → %q\n", id, name)
		case errors.Is(err, ErrNotFound):
			fmt.Fprintf(w, "  id=%d → not found (%v)\n", id, err)
		case errors.Is(err, ErrPermission):
			fmt.Fprintf(w, "  id=%d → access denied\n", id)
		}
	}
	_, err := findUser(99)
	fmt.Fprintf(w, "  err == ErrNotFound → %v, errors.Is → %v\n", err == ErrNotFound, errors.Is(err, ErrNotFound))
}
