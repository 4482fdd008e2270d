package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvitationCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateInvitationCode()
		require.NoError(t, err)

		assert.Len(t, code, 8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(invitationCodeCharset, ch),
				"unexpected character %q in code %q", ch, code)
		}
	}
}

func TestGenerateInvitationCode_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateInvitationCode()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a 36^8 space colliding down to a single value would
	// mean the random source is broken.
	assert.Greater(t, len(seen), 1)
}
