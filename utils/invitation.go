package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	invitationCodeLength  = 8
	invitationCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateInvitationCode produces an 8-character code drawn uniformly
// from A-Z and 0-9 using a cryptographically secure source. Uniqueness
// is enforced by the unique constraint on shared_groups.invitation_code.
func GenerateInvitationCode() (string, error) {
	code := make([]byte, invitationCodeLength)
	max := big.NewInt(int64(len(invitationCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = invitationCodeCharset[n.Int64()]
	}
	return string(code), nil
}
