package validator

import (
	"net/mail"
	"strings"
)

// isEmail reports whether value is a bare local@domain address whose domain has
// at least one dot and no empty labels.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	// Parse with Go's mail parser first. Display names and angle brackets are
	// accepted by the parser but not by a form field.
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
