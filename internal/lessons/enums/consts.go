package enums

import (
	"fmt"
	"io"
	"strings"
)

// Direction is a plain enum. The zero value is North, so pick the order
// with that in mind; many enums reserve 0 for "unknown".
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Turn rotates clockwise. Arithmetic on the underlying int is allowed.
func (d Direction) Turn() Direction { return (d + 1) % 4 }

// StatusCode pins each constant to an explicit value.
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusBadRequest          StatusCode = 400
	StatusUnauthorized        StatusCode = 401
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

func (s StatusCode) Class() string {
	switch {
	case s >= 500:
		return "server error"
	case s >= 400:
		return "client error"
	case s >= 200 && s < 300:
		return "success"
	default:
		return "other"
	}
}

// Permission is a bit set. Each constant is a distinct power of two.
type Permission uint8

const (
	Read Permission = 1 << iota
	Write
	Exec
)

func (p Permission) String() string {
	if p == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		bit  Permission
		name string
	}{{Read, "read"}, {Write, "write"}, {Exec, "exec"}} {
		if p&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Skipping values: _ consumes an iota step.
type Size int64

const (
	_       = iota
	KB Size = 1 << (10 * iota)
	MB
	GB
)

func demoIota(w io.Writer) {
	for d := North; d <= West; d++ {
		fmt.Fprintf(w, "  %-5v = %d  Turn() → %v\n", d, int(d), d.Turn())
	}
	fmt.Fprintf(w, "  Direction(9) → %v  ← nothing stops out-of-range values\n", Direction(9))
	fmt.Fprintf(w, "  KB=%d MB=%d GB=%d\n", KB, MB, GB)
}

func demoValues(w io.Writer) {
	for _, s := range []StatusCode{StatusOK, StatusNotFound, StatusInternalServerError} {
		fmt.Fprintf(w, "  %d → %s\n", int(s), s.Class())
	}

	p := Read | Write
	fmt.Fprintf(w, "\n  Read|Write       = %v (%03b)\n", p, uint8(p))
	fmt.Fprintf(w, "  has Exec?        = %v\n", p&Exec != 0)
	p |= Exec
	fmt.Fprintf(w, "  after |= Exec    = %v\n", p)
	p &^= Write
	fmt.Fprintf(w, "  after &^= Write  = %v\n", p)
}

// compass switches over every Direction. The default case catches values
// added later (or out-of-range ones), since Go does not check exhaustiveness.
func compass(d Direction) string {
	switch d {
	case North:
		return "↑"
	case East:
		return "→"
	case South:
		return "↓"
	case West:
		return "←"
	default:
		return "?"
	}
}

func demoSwitch(w io.Writer) {
	for d := North; d <= West+1; d++ {
		fmt.Fprintf(w, "  compass(%v) = %s\n", d, compass(d))
	}
}
