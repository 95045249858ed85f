package packages

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
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 7: Packages and Modules ==="))
}

func TestInitOrder(t *testing.T) {
	assert.Equal(t, []string{
		"var second",
		"var first (depends on second)",
		"init() #1",
		"init() #2",
	}, initLog)
}

func TestThirdParty(t *testing.T) {
	var buf bytes.Buffer
	demoThirdParty(&buf)
	out := buf.String()

	assert.Contains(t, out, "(version 5)")
	assert.Contains(t, out, "same inputs, same UUID → true")
	assert.Contains(t, out, "uuid.New() is random, version 4, variant RFC4122")
	assert.Contains(t, out, "→ true, err=true")
}

func TestInventoryWalkthrough(t *testing.T) {
	var buf bytes.Buffer
	demoInventory(&buf)
	out := buf.String()

	assert.Contains(t, out, "insufficient stock")
	assert.Contains(t, out, "unknown item")
	assert.Contains(t, out, "amount must be positive")
	assert.Contains(t, out, "stock notebook = 3")
	assert.Contains(t, out, "stock pen      = 6")
}
