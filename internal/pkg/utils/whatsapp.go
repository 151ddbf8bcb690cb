package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildWhatsAppLink builds a wa.me deep link with a url-encoded prefilled
// message. The phone number is stripped down to digits; an empty phone yields
// an empty link so callers can omit the action entirely.
func BuildWhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return ""
	}

	if message == "" {
		return fmt.Sprintf("https://wa.me/%s", digits)
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
