package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTable(t *testing.T) {
	assert.Equal(t, 20, Capacity(FieldVesselName))
	assert.Equal(t, 7, Capacity(FieldCallSign))
	assert.Equal(t, 0, Capacity("nonexistent_field"))
}

func TestNewTextRoundTrip(t *testing.T) {
	text := NewText(FieldVesselName)
	require.NoError(t, text.Set("SF OAK BAY BR VAIS E"))
	assert.Equal(t, "SF OAK BAY BR VAIS E", text.String())
	assert.Equal(t, 20, text.Len())
}
