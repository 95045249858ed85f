package structs

import (
	"errors"
	"fmt"
	"io"
	"math"
)

type Rectangle struct {
	Width, Height float64
}

// Area has a value receiver: it gets a copy and cannot change r.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale has a pointer receiver: it modifies the caller's value.
func (r *Rectangle) Scale(f float64) {
	r.Width *= f
	r.Height *= f
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%gx%g)", r.Width, r.Height)
}

func demoMethods(w io.Writer) {
	r := Rectangle{Width: 3, Height: 4}
	fmt.Fprintf(w, "  %v.Area() = %g\n", r, r.Area())

	r.Scale(2) // Go takes &r automatically because r is addressable
	fmt.Fprintf(w, "  after r.Scale(2): %v\n", r)

	small := Rectangle{Width: 1, Height: 1}
	fmt.Fprintf(w, "  r.CanHold(%v) = %v\n", small, r.CanHold(small))

	// Method values bind the receiver; method expressions take it as an argument.
	area := r.Area
	areaOf := Rectangle.Area
	fmt.Fprintf(w, "  method value r.Area() = %g, method expression Rectangle.Area(small) = %g\n",
		area(), areaOf(small))

	// Rule of thumb: if any method needs a pointer receiver, give them all one.
	fmt.Fprintln(w, "  rule: mixing receivers is legal, but keep one kind per type")
}

// Circle has unexported fields; NewCircle is the only way to get a valid one.
type Circle struct {
	radius float64
}

var ErrNegativeRadius = errors.New("radius must not be negative")

// NewCircle validates its input, so every Circle in the program is valid.
func NewCircle(radius float64) (*Circle, error) {
	if radius < 0 {
		return nil, fmt.Errorf("new circle %g: %w", radius, ErrNegativeRadius)
	}
	return &Circle{radius: radius}, nil
}

// UnitSquare is a constructor without arguments.
func UnitSquare() Rectangle { return Rectangle{Width: 1, Height: 1} }

func (c *Circle) Area() float64 { return math.Pi * c.radius * c.radius }

func demoConstructors(w io.Writer) {
	c, err := NewCircle(2)
	if err == nil {
		fmt.Fprintf(w, "  NewCircle(2).Area() = %.4f\n", c.Area())
	}

	_, err = NewCircle(-1)
	fmt.Fprintf(w, "  NewCircle(-1) → %v\n", err)

	fmt.Fprintf(w, "  UnitSquare() = %v\n", UnitSquare())
}
