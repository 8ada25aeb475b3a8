package notify

import "strings"

// FormatKenyanPhone normalizes a phone number to international format,
// assuming a Kenyan number when no country code is present. The second
// return is false when the format cannot be determined.
func FormatKenyanPhone(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "254"):
		return "+" + digits, true
	case strings.HasPrefix(digits, "0"):
		return "+254" + digits[1:], true
	case len(digits) == 9:
		return "+254" + digits, true
	case len(digits) == 10 && strings.HasPrefix(digits, "7"):
		return "+254" + digits, true
	}
	return "", false
}
