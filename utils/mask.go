package utils

import "strings"

// MaskEmail hides most of the local part of an email address so it can
// be written to logs: "alice@example.com" -> "a***e@example.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	local := email[:at]
	if len(local) <= 2 {
		return "***" + email[at:]
	}
	return local[:1] + "***" + local[len(local)-1:] + email[at:]
}
