package variables

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// demoBasicTypes lists the built-in types and their sizes on a 64-bit
// platform. int and uint are word-sized; the sized variants are fixed.
func demoBasicTypes(w io.Writer) {
	fmt.Fprintln(w, "  Integers:")
	fmt.Fprintf(w, "    int8   %d bytes  [%d, %d]\n", unsafe.Sizeof(int8(0)), math.MinInt8, math.MaxInt8)
	fmt.Fprintf(w, "    int16  %d bytes  [%d, %d]\n", unsafe.Sizeof(int16(0)), math.MinInt16, math.MaxInt16)
	fmt.Fprintf(w, "    int32  %d bytes  [%d, %d]\n", unsafe.Sizeof(int32(0)), math.MinInt32, math.MaxInt32)
	fmt.Fprintf(w, "    int64  %d bytes  [%d, %d]\n", unsafe.Sizeof(int64(0)), math.MinInt64, math.MaxInt64)
	fmt.Fprintf(w, "    uint8  %d bytes  [0, %d]  (alias: byte)\n", unsafe.Sizeof(uint8(0)), math.MaxUint8)
	fmt.Fprintf(w, "    uint64 %d bytes  [0, %d]\n", unsafe.Sizeof(uint64(0)), uint64(math.MaxUint64))

	fmt.Fprintln(w, "\n  Floating point (IEEE-754):")
	fmt.Fprintf(w, "    float32 max ≈ %.3e\n", math.MaxFloat32)
	fmt.Fprintf(w, "    float64 max ≈ %.3e\n", math.MaxFloat64)
	fmt.Fprintf(w, "    0.1 + 0.2 = %.17f  ← binary floating point\n", 0.1+float64Of(0.2))

	fmt.Fprintln(w, "\n  Complex:")
	z := complex(3, 4)
	fmt.Fprintf(w, "    z = %v  real=%v imag=%v\n", z, real(z), imag(z))

	fmt.Fprintln(w, "\n  Booleans:")
	t, f := true, false
	fmt.Fprintf(w, "    t && f = %v   t || f = %v   !t = %v\n", t && f, t || f, !t)

	fmt.Fprintln(w, "\n  Strings are immutable byte sequences (UTF-8 by convention):")
	s := "héllo, 世界"
	fmt.Fprintf(w, "    s = %q\n", s)
	fmt.Fprintf(w, "    len(s) = %d bytes, %d runes\n", len(s), utf8.RuneCountInString(s))
	fmt.Fprintf(w, "    s[1] = %d (a byte, not a character)\n", s[1])
	r, size := utf8.DecodeRuneInString(s[1:])
	fmt.Fprintf(w, "    first rune at s[1:] = %q (%d bytes)\n", r, size)

	fmt.Fprintln(w, "\n  Arrays have their length in the type:")
	arr := [3]int{1, 2, 3}
	arr2 := arr // arrays are values: this is a full copy
	arr2[0] = 99
	fmt.Fprintf(w, "    arr=%v arr2=%v  type=%T\n", arr, arr2, arr)

	fmt.Fprintln(w, "\n  Integer overflow wraps silently at runtime:")
	var u8 uint8 = 255
	u8++
	fmt.Fprintf(w, "    uint8(255) + 1 = %d\n", u8)
	var i8 int8 = 127
	i8++
	fmt.Fprintf(w, "    int8(127) + 1  = %d\n", i8)
}

// float64Of keeps the addition out of constant folding so the rounding
// error is visible.
func float64Of(v float64) float64 { return v }

// demoConversions: Go never converts implicitly between named numeric
// types. T(v) converts; strconv parses and formats.
func demoConversions(w io.Writer) {
	i := 42
	f := float64(i) * 1.5
	back := int(f) // truncates toward zero
	fmt.Fprintf(w, "  float64(42) * 1.5 = %v, int(...) = %d\n", f, back)

	big := 300
	narrowed := uint8(big) // keeps the low 8 bits
	fmt.Fprintf(w, "  uint8(300) = %d  ← narrowing drops high bits\n", narrowed)

	neg := -7.9
	fmt.Fprintf(w, "  int(-7.9) = %d\n", int(neg))

	fmt.Fprintln(w, "\n  strconv:")
	n, err := strconv.Atoi("123")
	fmt.Fprintf(w, "    Atoi(\"123\")  → %d, err=%v\n", n, err)
	_, err = strconv.Atoi("12a")
	fmt.Fprintf(w, "    Atoi(\"12a\")  → err=%v\n", err)
	pf, _ := strconv.ParseFloat("3.25", 64)
	fmt.Fprintf(w, "    ParseFloat(\"3.25\") → %v\n", pf)
	pb, _ := strconv.ParseBool("true")
	fmt.Fprintf(w, "    ParseBool(\"true\")  → %v\n", pb)
	fmt.Fprintf(w, "    Itoa(255)           → %q\n", strconv.Itoa(255))
	fmt.Fprintf(w, "    FormatInt(255, 2)   → %q\n", strconv.FormatInt(255, 2))

	fmt.Fprintln(w, "\n  string ↔ []byte ↔ []rune:")
	s := "añb"
	fmt.Fprintf(w, "    []byte(%q) = %v\n", s, []byte(s))
	fmt.Fprintf(w, "    []rune(%q) = %v\n", s, []rune(s))
	fmt.Fprintf(w, "    string(rune(65)) = %q\n", string(rune(65)))
	fmt.Fprintf(w, "    strconv.Itoa(65) = %q  ← not the same thing\n", strconv.Itoa(65))
}
