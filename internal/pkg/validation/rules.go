package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	courseCodeRegex = regexp.MustCompile(`^[A-Z]{2,5}[0-9]{2,4}$`)
)

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidCourseCode reports whether the string matches the course code
// convention (letters followed by digits, e.g. CS101).
func IsValidCourseCode(code string) bool {
	return courseCodeRegex.MatchString(strings.TrimSpace(code))
}
