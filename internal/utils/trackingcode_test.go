package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingCode(t *testing.T) {
	code, err := GenerateTrackingCode()

	require.NoError(t, err)
	assert.Len(t, code, len("TK-")+trackingCodeLength)
	assert.True(t, strings.HasPrefix(code, "TK-"))

	for _, c := range code[len("TK-"):] {
		assert.Contains(t, trackingAlphabet, string(c),
			"code %s contains character outside the alphabet", code)
	}
}

func TestGenerateTrackingCode_ExcludesAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateTrackingCode()
		require.NoError(t, err)

		for _, ambiguous := range []string{"0", "O", "1", "I", "L"} {
			assert.NotContains(t, code[len("TK-"):], ambiguous)
		}
	}
}

func TestGenerateTrackingCode_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateTrackingCode()
		require.NoError(t, err)
		seen[code] = true
	}

	// 31^8 codes; 100 draws colliding would mean a broken generator.
	assert.Len(t, seen, 100)
}
