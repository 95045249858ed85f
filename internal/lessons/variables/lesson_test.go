package variables

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
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 1: Variables and Data Types ==="))
}

func TestRunCoversTopics(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)
	out := buf.String()

	for _, want := range []string{
		"outer err = <nil>",
		"uint8(255) + 1 = 0",
		"int8(127) + 1  = -128",
		"uint8(300) = 44",
		"int(-7.9) = -7",
		"len(s) = 14 bytes, 9 runes",
		"huge >> 98 = 4",
		"Duration 2s",
	} {
		assert.Contains(t, out, want)
	}
}
