package booking

import "strings"

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone strips everything but digits and drops the country-code
// prefix when present, returning the bare local subscriber number. The
// second return is false when the digits fit neither shape.
func NormalizePhone(value, countryCode string, localDigits int) (string, bool) {
	digits := digitsOnly(value)
	if len(digits) == localDigits {
		return digits, true
	}
	if countryCode != "" &&
		len(digits) == localDigits+len(countryCode) &&
		strings.HasPrefix(digits, countryCode) {
		return digits[len(countryCode):], true
	}
	return "", false
}

// FormatPhone renders a normalized local number with its country-code
// prefix, e.g. "+968 92345678".
func FormatPhone(local, countryCode string) string {
	if countryCode == "" {
		return local
	}
	return "+" + countryCode + " " + local
}
