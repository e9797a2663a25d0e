package oaikit

import (
	"math"
	"strings"
	"unicode/utf8"
)

// RoughTokenCount estimates the number of tokens in content using the rules
// of thumb published by OpenAI: about four characters or three quarters of a
// word per token. The two estimates are averaged. Empty content counts as 0;
// anything else counts as at least 1.
func RoughTokenCount(content string) int {
	if content == "" {
		return 0
	}
	byChars := float64(utf8.RuneCountInString(content)) / 4.0
	byWords := float64(len(strings.Fields(content))) * 4.0 / 3.0
	estimate := int(math.Round((byChars + byWords) / 2.0))
	return max(1, estimate)
}
