package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizePhone strips every non-digit character and prefixes the
// country calling code unless the number already starts with it.
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, countryCode) {
		return digits
	}
	return countryCode + digits
}

// BuildWhatsAppLink builds a wa.me deep link with the message as a
// URL-encoded text parameter.
func BuildWhatsAppLink(phone, countryCode, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone, countryCode), encoded)
}
