package stringz

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitByCapitals slices s into all substrings separated by upper case letters and returns a slice of
// the substrings between those letters.
func SplitByCapitals(s string) []string {
	if s == "" {
		return nil
	}

	start := 0
	var result []string

	for i := 1; i < len(s); i++ {
		if unicode.IsUpper(rune(s[i])) && !unicode.IsUpper(rune(s[i-1])) {
			result = append(result, s[start:i])
			start = i
		}
	}

	result = append(result, s[start:])
	return result
}

// LowerFirst returns s with its first rune lower cased.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// TrimLinesSpace removes spaces from each line in the provided s.
func TrimLinesSpace(s string) string {
	strLines := strings.Split(s, "\n")
	for i, line := range strLines {
		strLines[i] = strings.TrimSpace(line)
	}
	return strings.Join(strLines, "\n")
}

// Underline returns a line of spaces with carets between start and end,
// used to point at a part of the line printed above it.
func Underline(start, end int) string {
	if end <= start {
		end = start + 1
	}
	return strings.Repeat(" ", start) + strings.Repeat("^", end-start)
}
