package collections

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
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 6: Collections ==="))
}

func TestRunDoesNotMutateLibrary(t *testing.T) {
	Run(&bytes.Buffer{})
	assert.Equal(t, 1965, library[0].Year)
	assert.Len(t, library, 5)
}

func TestSliceAliasing(t *testing.T) {
	var buf bytes.Buffer
	demoInternals(&buf)
	out := buf.String()

	assert.Contains(t, out, "a:               [1 99 3 4 5]")
	assert.Contains(t, out, "a:               [1 99 3 4 100]")
	assert.Contains(t, out, "c:               [99 3 -1]")
}

func TestHelpersOutput(t *testing.T) {
	var buf bytes.Buffer
	demoLo(&buf)
	demoCompare(&buf)
	demoSets(&buf)
	out := buf.String()

	for _, want := range []string{
		"lo.GroupBy[classic] → [Emma Persuasion]",
		"lo.GroupBy[sci-fi] → [Dune Neuromancer Hyperion]",
		"lo.Filter(Year > 1900) → 3 books",
		"lo.Uniq → [a b c]",
		"lo.Chunk(1..7, 3) → [[1 2 3] [4 5 6] [7]]",
		"lo.Find(title starts with H) → Hyperion, true",
		"reflect.DeepEqual(nil, []int{}) → false",
		"cmpopts.EquateEmpty()) → true",
		"SortSlices) → true",
		"mentions Year → true",
		"a ∪ b = [go python rust zig]",
		"a ∩ b = [go]",
		"a − b = [rust zig]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestMapsOutput(t *testing.T) {
	var buf bytes.Buffer
	demoMaps(&buf)
	out := buf.String()

	assert.Contains(t, out, "len=2  blue=15  red=25  yellow present=false")
	assert.Contains(t, out, "count[world] = 2")
	assert.Contains(t, out, "byLen[2] = [go js]")
	assert.Contains(t, out, "original blue=15")
}
