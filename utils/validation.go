// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// Allows a + prefix followed by 2-15 digits, no leading zero.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizePhone strips common formatting from a phone number and reports
// whether the remainder is dialable. The cleaned number is what gets handed
// to the SMS provider.
func NormalizePhone(phone string) (string, bool) {
	cleaned := phoneCleaner.Replace(phone)
	if !phonePattern.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}
