package workbook

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSheetNameLength is the longest sheet name Excel accepts
	MaxSheetNameLength = 31
	// DefaultSheetName replaces titles that sanitize to nothing
	DefaultSheetName = "Sheet"
)

// invalidSheetChars cannot appear in an Excel sheet name
const invalidSheetChars = `[]:*?/\`

// SanitizeSheetName turns an arbitrary title into a valid sheet name
func SanitizeSheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return -1
		}
		return r
	}, title)

	name = truncate(name, MaxSheetNameLength)
	// Excel rejects names that begin or end with an apostrophe
	name = strings.Trim(name, "'")

	if name == "" {
		return DefaultSheetName
	}
	return name
}

// uniqueSheetName returns name, or name with a " (n)" suffix when name is
// already taken. Comparison is case-insensitive, as in Excel.
func uniqueSheetName(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate := truncate(name, MaxSheetNameLength-utf8.RuneCountInString(suffix)) + suffix
		if !taken(candidate) {
			return candidate
		}
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
