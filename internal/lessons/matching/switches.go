package matching

import (
	"fmt"
	"io"
	"unicode"
)

func classifyRune(r rune) string {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return "vowel"
	case ' ', '\t', '\n':
		return "space"
	}
	switch {
	case unicode.IsDigit(r):
		return "digit"
	case unicode.IsLetter(r):
		return "consonant"
	default:
		return "other"
	}
}

func demoValueSwitch(w io.Writer) {
	for _, r := range "go 1!" {
		fmt.Fprintf(w, "  %q → %s\n", r, classifyRune(r))
	}
}

// bucket uses conditions in cases, the equivalent of range patterns plus
// guards. Cases are tried top to bottom; the first true one wins.
func bucket(n int) string {
	switch {
	case n < 0:
		return "negative"
	case n == 0:
		return "zero"
	case n <= 9:
		return "single digit"
	case n <= 99 && n%2 == 0:
		return "two digits, even"
	case n <= 99:
		return "two digits, odd"
	default:
		return "large"
	}
}

func demoRanges(w io.Writer) {
	for _, n := range []int{-5, 0, 7, 42, 51, 1000} {
		fmt.Fprintf(w, "  bucket(%d) = %s\n", n, bucket(n))
	}
}

func demoWildcard(w io.Writer) {
	httpText := func(code int) string {
		switch code {
		case 200:
			return "OK"
		case 404:
			return "Not Found"
		default: // catches every other value
			return "Unknown"
		}
	}
	for _, c := range []int{200, 404, 418} {
		fmt.Fprintf(w, "  %d → %s\n", c, httpText(c))
	}

	// Ignore parts of a tuple with _.
	_, minute, _ := clock()
	fmt.Fprintf(w, "  _, minute, _ := clock() → minute=%d\n", minute)
}

func clock() (int, int, int) { return 13, 37, 5 }

type Point struct{ X, Y int }

// describe matches on both the dynamic type and, inside each case, on
// values of the concrete type.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int:
		if x < 0 {
			return fmt.Sprintf("negative int %d", x)
		}
		return fmt.Sprintf("int %d", x)
	case string:
		return fmt.Sprintf("string of %d bytes", len(x))
	case Point:
		switch {
		case x.X == 0 && x.Y == 0:
			return "point at origin"
		case x.Y == 0:
			return fmt.Sprintf("point on x axis at %d", x.X)
		case x.X == 0:
			return fmt.Sprintf("point on y axis at %d", x.Y)
		default:
			return fmt.Sprintf("point (%d, %d)", x.X, x.Y)
		}
	case []int:
		switch len(x) {
		case 0:
			return "empty slice"
		case 1:
			return fmt.Sprintf("slice with only %d", x[0])
		default:
			return fmt.Sprintf("slice starting %d, ending %d", x[0], x[len(x)-1])
		}
	case error:
		return "error: " + x.Error()
	case fmt.Stringer:
		return "stringer: " + x.String()
	default:
		return fmt.Sprintf("unhandled %T", x)
	}
}

func demoTypeSwitch(w io.Writer) {
	values := []any{
		nil, 7, -3, "héllo",
		Point{}, Point{X: 4}, Point{Y: -2}, Point{X: 1, Y: 1},
		[]int{}, []int{9}, []int{1, 2, 3},
		fmt.Errorf("disk full"),
		3.5,
	}
	for _, v := range values {
		fmt.Fprintf(w, "  %-22v → %s\n", fmt.Sprintf("%#v", v), describe(v))
	}
}
