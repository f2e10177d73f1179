package utils

import (
	"regexp"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// reservedCodes are the static route names the service exposes. A short code
// that collides with one of them would shadow the route, so they are never
// valid codes regardless of letter case.
var reservedCodes = map[string]struct{}{
	"create":          {},
	"login":           {},
	"delete":          {},
	"pause":           {},
	"resume":          {},
	"details":         {},
	"reset":           {},
	"refresh":         {},
	"validate":        {},
	"change-password": {},
	"change-url":      {},
	"health":          {},
}

// ValidCode reports whether code is usable as a short code:
// 3-20 chars of [A-Za-z0-9_-] and not a reserved route name.
func ValidCode(code string) bool {
	if _, reserved := reservedCodes[strings.ToLower(code)]; reserved {
		return false
	}
	return codePattern.MatchString(code)
}

// ValidPassword accepts the empty password (unprotected code) or 3-20 chars.
func ValidPassword(password string) bool {
	if len(password) == 0 {
		return true
	}
	return len(password) >= 3 && len(password) <= 20
}

// FormatURL trims whitespace and prepends https:// when no scheme is present.
func FormatURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// IsBlacklisted reports whether any blacklist entry occurs as a substring of
// url. Deliberately coarse: substring containment, not domain matching.
func IsBlacklisted(url string, blacklist []string) bool {
	for _, entry := range blacklist {
		if strings.Contains(url, entry) {
			return true
		}
	}
	return false
}
