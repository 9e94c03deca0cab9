package interception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyFilter(t *testing.T) {
	f, err := ParseKeyFilter([]string{"down", "UP", " e0 "})
	require.NoError(t, err)
	assert.Equal(t, KeyFilterDown|KeyFilterUp|KeyFilterE0, f)

	f, err = ParseKeyFilter([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, KeyFilterAll, f)

	f, err = ParseKeyFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, KeyFilterNone, f)

	_, err = ParseKeyFilter([]string{"down", "sideways"})
	assert.ErrorContains(t, err, "sideways")
}

func TestParseMouseFilter(t *testing.T) {
	f, err := ParseMouseFilter([]string{"wheel", "move"})
	require.NoError(t, err)
	assert.Equal(t, MouseFilterWheel|MouseFilterMove, f)

	_, err = ParseMouseFilter([]string{"wheelie"})
	assert.ErrorContains(t, err, "wheelie")
}

func TestKeyFilterString(t *testing.T) {
	assert.Equal(t, "none", KeyFilterNone.String())
	assert.Equal(t, "all", KeyFilterAll.String())
	assert.Equal(t, "down|up", (KeyFilterDown | KeyFilterUp).String())
}

func TestMouseFilterString(t *testing.T) {
	assert.Equal(t, "none", MouseFilterNone.String())
	assert.Equal(t, "all", MouseFilterAll.String())
	assert.Equal(t, "wheel|move", (MouseFilterWheel | MouseFilterMove).String())
}
