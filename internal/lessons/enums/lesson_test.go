package enums

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
	assert.True(t, strings.HasPrefix(a.String(), "=== Lesson 4: Enums ==="))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "South", South.String())
	assert.Equal(t, North, West.Turn())
	assert.Equal(t, "Direction(9)", Direction(9).String())
	assert.Equal(t, "?", compass(Direction(4)))
}

func TestPermission(t *testing.T) {
	assert.Equal(t, "none", Permission(0).String())
	assert.Equal(t, "read|exec", (Read | Exec).String())
	assert.Equal(t, Permission(7), Read|Write|Exec)
}

func TestSizes(t *testing.T) {
	assert.EqualValues(t, 1024, KB)
	assert.EqualValues(t, 1<<20, MB)
	assert.EqualValues(t, 1<<30, GB)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{Quit{}, "quit"},
		{Move{X: 1, Y: -2}, "move to (1, -2)"},
		{WriteText{Text: "hi"}, `write "hi"`},
		{ChangeColor{R: 255, G: 0, B: 16}, "color #ff0010"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handle(tt.msg))
	}
}

func TestCoins(t *testing.T) {
	c, ok := ParseCoin("QUARTER")
	require.True(t, ok)
	assert.Equal(t, 25, c.Cents())

	_, ok = ParseCoin("euro")
	assert.False(t, ok)
	assert.Equal(t, "coin(9)", Coin(9).String())
}

func TestOptionAndResult(t *testing.T) {
	assert.Equal(t, "alice", lookupOpt(1).MustGet())
	assert.True(t, lookupOpt(9).IsAbsent())

	assert.Equal(t, 7, parseResult("7").MustGet())
	r := parseResult("-3")
	require.True(t, r.IsError())
	assert.ErrorIs(t, r.Error(), ErrNegative)

	var buf bytes.Buffer
	demoResult(&buf)
	assert.Contains(t, buf.String(), `parseResult("21").Map(*2) → Ok(42)`)
}
