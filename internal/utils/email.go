package utils

import "net/mail"

// IsEmail reports whether s is a bare e-mail address ("user@example.org"),
// without display name or angle brackets.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}
