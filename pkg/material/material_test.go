package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	l, err := Get("MAPbI3", 500e-9)
	require.NoError(t, err)

	assert.Equal(t, "MAPbI3", l.Name)
	assert.Equal(t, 500e-9, l.Thickness)
	assert.Equal(t, 1.55, l.Eg)
	assert.Equal(t, 25.0, l.Epsr)
	assert.True(t, l.IsAbsorber())
	require.NoError(t, l.Validate())
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("unobtainium", 100e-9)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, "tio2")
	assert.Contains(t, names, "spiro-ometad")
	assert.IsIncreasing(t, names)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(" TiO2 ")
	require.True(t, ok)
	assert.Equal(t, 3.2, p.Eg)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
