package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	ratio, err := ContrastRatio("#000000", "#ffffff")

	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)
}

func TestContrastRatio_SymmetricInArguments(t *testing.T) {
	a, err := ContrastRatio("#2563eb", "#ffffff")
	require.NoError(t, err)
	b, err := ContrastRatio("#ffffff", "#2563eb")
	require.NoError(t, err)

	assert.InDelta(t, a, b, 0.0001)
}

func TestContrastRatio_ShorthandHex(t *testing.T) {
	short, err := ContrastRatio("#000", "#fff")
	require.NoError(t, err)
	long, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)

	assert.InDelta(t, long, short, 0.0001)
}

func TestContrastRatio_SameColorIsOne(t *testing.T) {
	ratio, err := ContrastRatio("#abcdef", "#abcdef")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 0.0001)
}

func TestContrastRatio_InvalidColor(t *testing.T) {
	_, err := ContrastRatio("blue", "#ffffff")

	assert.Error(t, err)
}

func TestIsATSApprovedFont_CaseInsensitive(t *testing.T) {
	assert.True(t, IsATSApprovedFont("arial"))
	assert.True(t, IsATSApprovedFont("Times New Roman"))
	assert.False(t, IsATSApprovedFont("Comic Sans MS"))
}

func TestIsATSApprovedFont_IgnoresFallbackList(t *testing.T) {
	assert.True(t, IsATSApprovedFont("Georgia, serif"))
	assert.True(t, IsATSApprovedFont(`"Helvetica", Arial, sans-serif`))
}
