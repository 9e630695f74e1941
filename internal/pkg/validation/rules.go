package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern - shape only, the domain check is separate
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsInstitutionalEmail reports whether the email belongs to the given
// institutional domain. Matching is case-insensitive and ignores
// surrounding whitespace; domain is expected without the leading "@".
func IsInstitutionalEmail(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !CompiledPatterns.Email.MatchString(email) {
		return false
	}
	return strings.HasSuffix(email, "@"+strings.ToLower(domain))
}

// ParseCalendarDate parses an ISO calendar date (YYYY-MM-DD)
func ParseCalendarDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
