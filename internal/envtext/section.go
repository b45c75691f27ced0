package envtext

import (
	"strings"
	"unicode"
)

// RemoveSection deletes the first "# [name]" header and every line after it
// up to the next section header. Runs of three or more blank lines left
// behind are collapsed to two and trailing whitespace is trimmed. If the
// header is not present, text is returned unchanged.
func RemoveSection(text, name string) string {
	header := Header(name)
	return removeFirst(text, func(line string) bool {
		return strings.TrimSpace(line) == header
	})
}

// RemoveSectionNamed is RemoveSection for any header form Parse accepts,
// such as "#[name]" or "# [ name ]".
func RemoveSectionNamed(text, name string) string {
	return removeFirst(text, namedHeader(name))
}

func removeFirst(text string, match func(line string) bool) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if match(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if _, ok := ParseHeader(lines[i]); ok {
			end = i
			break
		}
	}

	kept := make([]string, 0, len(lines)-(end-start))
	kept = append(kept, lines[:start]...)
	kept = append(kept, lines[end:]...)

	return strings.TrimRightFunc(strings.Join(collapseBlankRuns(kept), "\n"), unicode.IsSpace)
}

func namedHeader(name string) func(string) bool {
	name = strings.TrimSpace(name)
	return func(line string) bool {
		got, ok := ParseHeader(line)
		return ok && got == name
	}
}

// ReplaceSection removes every header for name, in any accepted form, and
// appends a fresh one with body
// at the end of text, separated from existing content by a blank line.
func ReplaceSection(text, name, body string) string {
	base := text
	for HasSection(base, name) {
		base = RemoveSectionNamed(base, name)
	}
	base = strings.TrimRightFunc(base, unicode.IsSpace)

	var b strings.Builder
	if base != "" {
		b.WriteString(base)
		b.WriteString("\n\n")
	}
	b.WriteString(Header(name))
	b.WriteString("\n")
	if body = strings.TrimRightFunc(body, unicode.IsSpace); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

// HasSection reports whether text has a header Parse reads as name.
func HasSection(text, name string) bool {
	match := namedHeader(name)
	for _, line := range strings.Split(text, "\n") {
		if match(line) {
			return true
		}
	}
	return false
}

func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return out
}
