// Package redact scrubs sensitive values from strings before they are logged
// or returned in error responses. Besides credentials and stack traces it
// removes the personal data this service handles: session tokens, period
// dates, email addresses, phone numbers and location coordinates.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedJWTPlaceholder   = "[REDACTED_JWT]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPhonePlaceholder = "[REDACTED_PHONE]"
	RedactedDatePlaceholder  = "[REDACTED_DATE]"
	RedactedGeoPlaceholder   = "[REDACTED_LOCATION]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; earlier rules must not leave text that a later
// rule would partially match (dates go before phone numbers).
var rules = []rule{
	// Three-part base64url JWT, optionally preceded by a Bearer scheme
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// Coordinate pairs such as "28.6139,77.2090" or "lat=28.61 lng=77.20"
	{regexp.MustCompile(`-?\d{1,3}\.\d{2,}\s*,\s*-?\d{1,3}\.\d{2,}`), RedactedGeoPlaceholder},
	{regexp.MustCompile(`(?i)\b(lat|latitude|lng|lon|longitude)(['"\s:=]+)-?\d{1,3}(\.\d+)?`), RedactedGeoPlaceholder},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), RedactedDatePlaceholder},
	{regexp.MustCompile(`\+?\d[\d\s-]{8,}\d`), RedactedPhonePlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
