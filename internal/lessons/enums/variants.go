package enums

import (
	"fmt"
	"io"
	"strings"
)

// Message is a closed set of variants. The unexported method means only
// types in this package can implement it.
type Message interface {
	isMessage()
}

type Quit struct{}
type Move struct{ X, Y int }
type WriteText struct{ Text string }
type ChangeColor struct{ R, G, B uint8 }

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (WriteText) isMessage()   {}
func (ChangeColor) isMessage() {}

func handle(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "quit"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", v.X, v.Y)
	case WriteText:
		return fmt.Sprintf("write %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("color #%02x%02x%02x", v.R, v.G, v.B)
	default:
		return fmt.Sprintf("unknown %T", v)
	}
}

// IPAddr has two shapes that share a method.
type IPAddr interface {
	String() string
}

type V4 [4]uint8
type V6 string

func (a V4) String() string { return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3]) }
func (a V6) String() string { return string(a) }

func demoVariants(w io.Writer) {
	msgs := []Message{
		Quit{},
		Move{X: 10, Y: 20},
		WriteText{Text: "hello"},
		ChangeColor{R: 255, G: 128, B: 0},
	}
	for _, m := range msgs {
		fmt.Fprintf(w, "  %-28T → %s\n", m, handle(m))
	}

	fmt.Fprintln(w)
	for _, ip := range []IPAddr{V4{127, 0, 0, 1}, V6("::1")} {
		fmt.Fprintf(w, "  %T → %s\n", ip, ip)
	}
}

// Coin carries its value through a method instead of a payload.
type Coin int

const (
	Penny Coin = iota + 1
	Nickel
	Dime
	Quarter
)

func (c Coin) Cents() int {
	switch c {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	}
	return 0
}

func (c Coin) String() string {
	switch c {
	case Penny:
		return "penny"
	case Nickel:
		return "nickel"
	case Dime:
		return "dime"
	case Quarter:
		return "quarter"
	}
	return "coin(" + fmt.Sprint(int(c)) + ")"
}

// ParseCoin is the reverse mapping, returning ok=false for unknown names.
func ParseCoin(s string) (Coin, bool) {
	for c := Penny; c <= Quarter; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

func demoMethods(w io.Writer) {
	total := 0
	for _, c := range []Coin{Quarter, Dime, Penny, Penny} {
		total += c.Cents()
		fmt.Fprintf(w, "  %-7v %2d¢\n", c, c.Cents())
	}
	fmt.Fprintf(w, "  total   %2d¢\n", total)

	for _, s := range []string{"Dime", "euro"} {
		c, ok := ParseCoin(s)
		fmt.Fprintf(w, "  ParseCoin(%q) → %v, %v\n", s, c, ok)
	}
}
