package utils

import (
	"regexp"
	"strings"
)

// CleanSheetName removes characters spreadsheet tabs cannot contain
func CleanSheetName(name string) string {
	reg := regexp.MustCompile(`[\[\]:*?/\\]`)
	cleaned := reg.ReplaceAllString(name, "_")

	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > MaxSheetNameLength {
		cleaned = string(runes[:MaxSheetNameLength])
	}
	return cleaned
}
