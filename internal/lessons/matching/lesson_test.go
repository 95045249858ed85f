package matching

import (
	"bytes"
	"errors"
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
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 5: Pattern Matching ==="))
}

func TestBucket(t *testing.T) {
	tests := map[int]string{
		-1:  "negative",
		0:   "zero",
		9:   "single digit",
		10:  "two digits, even",
		11:  "two digits, odd",
		100: "large",
	}
	for n, want := range tests {
		assert.Equal(t, want, bucket(n), "bucket(%d)", n)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{-3, "negative int -3"},
		{"abc", "string of 3 bytes"},
		{Point{}, "point at origin"},
		{Point{X: 2}, "point on x axis at 2"},
		{Point{Y: 2}, "point on y axis at 2"},
		{[]int{}, "empty slice"},
		{[]int{4}, "slice with only 4"},
		{errors.New("x"), "error: x"},
		{2.5, "unhandled float64"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describe(tt.in))
	}
}

func TestClassifyRune(t *testing.T) {
	assert.Equal(t, "vowel", classifyRune('o'))
	assert.Equal(t, "consonant", classifyRune('g'))
	assert.Equal(t, "digit", classifyRune('7'))
	assert.Equal(t, "space", classifyRune(' '))
	assert.Equal(t, "other", classifyRune('!'))
}

func TestErrorsAndRegexp(t *testing.T) {
	var buf bytes.Buffer
	demoErrors(&buf)
	demoRegexp(&buf)
	out := buf.String()

	assert.Contains(t, out, `missing.txt → not found (bound Name="missing.txt")`)
	assert.Contains(t, out, "secret.txt → permission denied")
	assert.Contains(t, out, `"2024-02-29" → year=2024 month=02 day=29`)
	assert.Contains(t, out, `"24-2-29" → no match`)
}
