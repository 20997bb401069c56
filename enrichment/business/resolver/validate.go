package resolver

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Sequences that show up in throwaway addresses typed into lead forms.
var fakeEmailPatterns = []string{"999999", "111111", "000000", "123456789"}

// NormalizePhone validates raw as a Brazilian number and returns it in E.164.
func NormalizePhone(raw string) (string, bool) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), "BR")
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// NormalizeEmail lowercases and trims raw, rejecting addresses that are too
// short, structurally broken, or match a known throwaway pattern.
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if len(email) < 5 {
		return "", false
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "", false
	}
	for _, pattern := range fakeEmailPatterns {
		if strings.Contains(email, pattern) {
			return "", false
		}
	}
	return email, true
}
