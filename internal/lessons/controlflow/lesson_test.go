package controlflow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	Run(&a)
	Run(&b)

	require.NotZero(t, a.Len())
	assert.Equal(t, a.String(), b.String())
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 2: Functions and Control Flow ==="))
}

func TestHelpers(t *testing.T) {
	lo, hi, sum := stats(3, 1, 2)
	assert.Equal(t, [3]int{1, 3, 6}, [3]int{lo, hi, sum})

	lo, hi, sum = stats()
	assert.Zero(t, lo+hi+sum)

	q, r := divmod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)

	_, err := greet(" ")
	assert.ErrorIs(t, err, errEmptyName)

	assert.Equal(t, 42, doubled())

	next := counter()
	next()
	assert.Equal(t, 2, next())
}

func TestValueAndPointerParameters(t *testing.T) {
	n := 1
	incrementCopy(n)
	assert.Equal(t, 1, n)
	incrementPtr(&n)
	assert.Equal(t, 2, n)

	s := make([]string, 1, 4)
	s[0] = "orig"
	appendTo(s)
	assert.Equal(t, []string{"orig"}, s)
	setFirst(s)
	assert.Equal(t, []string{"changed"}, s)
}

func TestDeferOrder(t *testing.T) {
	var buf bytes.Buffer
	lifo(&buf)
	assert.Equal(t,
		"  body\n  defer 3  ← registered last, runs first\n  defer 2\n  defer 1  ← registered first, runs last\n",
		buf.String())

	buf.Reset()
	loopDefers(&buf)
	assert.Equal(t, "  i = 2\n  i = 1\n  i = 0\n", buf.String())

	buf.Reset()
	argEval(&buf)
	assert.Contains(t, buf.String(), "defer saw x = 0")
}

func TestLoopsOutput(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)
	out := buf.String()

	assert.Contains(t, out, "Collatz from 27) → 111 steps")
	assert.Contains(t, out, "first i with i*i > 50 is 8")
	assert.Contains(t, out, "found negative at (1,1)")
	assert.Contains(t, out, "skipping multiples of 3: 1 5 7")
	assert.Contains(t, out, "fallthrough from case 1: one two\n")
	assert.Contains(t, out, "fib(10) = 55")
}
