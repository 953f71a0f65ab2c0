package validators

import (
	"net"
	"strings"

	"github.com/sharpcuts/barber-booking/internal/httperr"
)

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// NormalizePhone strips separators from a customer phone number and
// validates its length. A leading + is preserved.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separator, skip
		default:
			return "", httperr.ErrValidation("invalid_phone", "Phone number contains invalid characters.")
		}
	}

	normalized := b.String()
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < 8 || len(digits) > 15 {
		return "", httperr.ErrValidation("invalid_phone", "Phone number must have 8 to 15 digits.")
	}

	return normalized, nil
}
