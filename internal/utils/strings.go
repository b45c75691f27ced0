package utils

import "strings"

// MaskSecret hides all but the last four characters of s. Short secrets are
// hidden entirely.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	const visible = 4
	if len(s) <= visible*2 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-visible) + s[len(s)-visible:]
}

// Plural returns singular when n is 1 and singular+"s" otherwise.
func Plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
