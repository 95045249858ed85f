package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/lessons/packages/inventory"
)

func TestStore(t *testing.T) {
	s := inventory.New()
	require.NoError(t, s.Add("pen", 5))
	require.NoError(t, s.Add("ink", 2))
	require.NoError(t, s.Remove("pen", 3))

	assert.Equal(t, 2, s.Quantity("pen"))
	assert.Equal(t, []string{"ink", "pen"}, s.SKUs())
	assert.Zero(t, s.Quantity("nope"))
}

func TestStoreErrors(t *testing.T) {
	s := inventory.New()
	require.NoError(t, s.Add("pen", 1))

	assert.ErrorIs(t, s.Add("pen", 0), inventory.ErrInvalidAmount)
	assert.ErrorIs(t, s.Remove("pen", -1), inventory.ErrInvalidAmount)
	assert.ErrorIs(t, s.Remove("cap", 1), inventory.ErrUnknownItem)
	assert.ErrorIs(t, s.Remove("pen", 2), inventory.ErrInsufficient)
	assert.Equal(t, 1, s.Quantity("pen"))
}
