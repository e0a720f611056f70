package util

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	disallowedRe  = regexp.MustCompile(`[^\p{L}\p{N}_\s\-\+\#\.\,\@\(\)\:\;\/\&]`)
	unsafeFileRe  = regexp.MustCompile(`[^\w\-\.]`)
	underscoresRe = regexp.MustCompile(`_+`)
	emailRe       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe       = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

// CleanText normalizes extracted text: whitespace collapsed to single
// spaces, characters outside the allowed set dropped, ends trimmed.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(text)
}

// SanitizeFilename strips path components and replaces unsafe characters.
func SanitizeFilename(filename string) string {
	if idx := strings.LastIndexAny(filename, `/\`); idx >= 0 {
		filename = filename[idx+1:]
	}
	filename = unsafeFileRe.ReplaceAllString(filename, "_")
	filename = underscoresRe.ReplaceAllString(filename, "_")
	return strings.ToLower(filename)
}

// TruncateText cuts text at maxLength runes, appending an ellipsis.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// ExtractEmail returns the first email address found in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number found in text, or "".
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
