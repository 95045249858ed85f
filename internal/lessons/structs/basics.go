package structs

import (
	"fmt"
	"io"
	"unsafe"
)

// User is a plain struct; fields are listed with their types.
type User struct {
	Username string
	Email    string
	Active   bool
	Logins   uint64
}

// Celsius is a defined type: a new name with its own method set, not an
// alias. It plays the role a one-field tuple struct plays elsewhere.
type Celsius float64

func (c Celsius) Fahrenheit() float64 { return float64(c)*9/5 + 32 }

// Color is small enough for a positional literal, but its fields are still
// named. Go has no tuple types.
type Color struct{ R, G, B uint8 }

// marker has no fields. All values of it share zero bytes of storage.
type marker struct{}

func demoDefinition(w io.Writer) {
	u := User{Username: "gopher", Email: "gopher@example.com", Active: true, Logins: 1}
	fmt.Fprintf(w, "  keyed literal:   %+v\n", u)

	var zero User
	fmt.Fprintf(w, "  zero value:      %+v\n", zero)

	// Positional literals must list every field and break when fields are added.
	black := Color{0, 0, 0}
	fmt.Fprintf(w, "  positional:      %+v\n", black)

	u.Logins++
	fmt.Fprintf(w, "  after u.Logins++ → %d\n", u.Logins)

	p := &User{Username: "ptr"}
	p.Email = "ptr@example.com" // automatic dereference: same as (*p).Email
	fmt.Fprintf(w, "  &User{...}.Email = %s\n", p.Email)

	// Structs of comparable fields are comparable with ==.
	fmt.Fprintf(w, "  Color{1,2,3} == Color{1,2,3} → %v\n", Color{1, 2, 3} == Color{1, 2, 3})
}

func demoShapes(w io.Writer) {
	point := struct{ X, Y int }{3, 4}
	fmt.Fprintf(w, "  anonymous struct: %+v\n", point)

	boiling := Celsius(100)
	fmt.Fprintf(w, "  Celsius(100).Fahrenheit() = %.1f\n", boiling.Fahrenheit())

	fmt.Fprintf(w, "  unsafe.Sizeof(marker{}) = %d\n", unsafe.Sizeof(marker{}))

	// map[T]struct{} is the idiomatic set.
	seen := map[string]struct{}{"go": {}}
	_, ok := seen["go"]
	fmt.Fprintf(w, "  set membership via map[string]struct{} → %v\n", ok)
}
