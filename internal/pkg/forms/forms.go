// Package forms contains parsing and validation helpers for values arriving
// from request forms. All numeric helpers recover locally: they substitute a
// default (or nil) instead of failing, so malformed input never aborts a
// request on its own.
package forms

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// SafeInt parses s as a number, truncating any fractional part. Empty or
// unparseable input yields def. Accepts "7.9" as 7 to match lenient form
// handling.
func SafeInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(f)
}

// SafeFloat parses s as a floating value. Empty or unparseable input yields
// nil rather than a default, so absent scores stay distinguishable from zero.
func SafeFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseYMD strictly parses an ISO YYYY-MM-DD date. There is no fallback
// format.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ValidEmailForRole reports whether email satisfies the login email rule for
// the given role: students use name.student@gmail.com addresses, staff use
// name.staff@gmail.com. Any other role fails. The check is case-insensitive.
// This is a business rule gate, not a general email validator.
func ValidEmailForRole(email, role string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	switch role {
	case "student":
		return strings.HasSuffix(email, ".student@gmail.com")
	case "staff":
		return strings.HasSuffix(email, ".staff@gmail.com")
	default:
		return false
	}
}

// NormalizeEmail lowercases and trims an email the way every inbound email
// field is normalized before storage or comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
