package rendering

import (
	"regexp"
	"strings"
)

const (
	// defaultBaseName is used when sanitization leaves nothing usable.
	defaultBaseName = "resume"
	// maxFilenameLength bounds the sanitized base name.
	maxFilenameLength = 50
)

var (
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// SanitizeFilename derives a download-safe base name from a candidate name.
// Characters outside word characters, spaces, and hyphens are stripped,
// whitespace runs collapse to single underscores, and the result is
// length-bounded. An empty result falls back to a generic name.
func SanitizeFilename(name string) string {
	cleaned := nonWordChars.ReplaceAllString(name, "")
	cleaned = whitespace.ReplaceAllString(strings.TrimSpace(cleaned), "_")
	if len(cleaned) > maxFilenameLength {
		cleaned = cleaned[:maxFilenameLength]
	}
	if cleaned == "" {
		return defaultBaseName
	}
	return cleaned
}
