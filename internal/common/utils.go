package common

import (
	"regexp"
	"strings"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// Must start with http:// or https:// and have a plausible domain.
var urlPattern = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](/[^\s]*)?$`)

// SanitizeURL performs basic cleanup on a URL to handle common
// copy-paste issues: surrounding whitespace, stray punctuation, and
// markdown link syntax.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ValidateURL reports whether url looks like a fetchable HTTP(S) URL.
// Literal spaces must be pre-encoded as %20.
func ValidateURL(url string) bool {
	if url == "" || strings.Contains(url, " ") {
		return false
	}
	return urlPattern.MatchString(url)
}
