package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHex(t *testing.T) {
	got, err := GenerateHex(32)
	require.NoError(t, err)
	assert.Len(t, got, 64) // hex doubles the byte count

	other, err := GenerateHex(32)
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}

func TestGenerateHex_InvalidLength(t *testing.T) {
	_, err := GenerateHex(0)
	assert.Error(t, err)

	_, err = GenerateHex(-1)
	assert.Error(t, err)
}
