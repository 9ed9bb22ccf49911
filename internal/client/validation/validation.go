// Package validation holds the pure predicates used to check user input
// (emails, avatar URLs, passwords, names) and ozzo-validation rules built on
// top of them for validating whole forms.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Whitespace covers Unicode separators too, not only ASCII \s.
var emailRe = regexp.MustCompile(`^[^\s\v\x{0085}\p{Z}\x{FEFF}@]+@[^\s\v\x{0085}\p{Z}\x{FEFF}@]+\.[^\s\v\x{0085}\p{Z}\x{FEFF}@]+$`)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// MinNameLength is the shortest accepted name after trimming.
const MinNameLength = 2

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidURL reports whether s is an absolute URL with a scheme and an authority.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsValidPassword reports whether s is at least MinPasswordLength characters long.
func IsValidPassword(s string) bool {
	return s != "" && utf8.RuneCountInString(s) >= MinPasswordLength
}

// IsValidName reports whether s has at least MinNameLength characters once trimmed.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= MinNameLength
}
