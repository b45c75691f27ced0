package envtext

import (
	"strings"
	"unicode"

	"github.com/PolarWolf314/gistenv/internal/secrets"
)

// EncryptContent encrypts every plaintext value in text in place. Without a
// usable key the text is returned unchanged.
func EncryptContent(text string, codec secrets.Codec) (string, error) {
	out, _, err := EncryptLines(text, codec)
	return out, err
}

// EncryptLines is EncryptContent that also reports how many values it
// encrypted. Comments, headers, blank and malformed lines, empty values and
// values that are already encrypted are copied verbatim. On assignment lines
// only the value bytes change; the key and surrounding whitespace stay.
func EncryptLines(text string, codec secrets.Codec) (string, int, error) {
	if !codec.Available() {
		return text, 0, nil
	}

	lines := strings.Split(text, "\n")
	count := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if _, _, ok := ParseAssignment(trimmed); !ok {
			continue
		}

		eq := strings.Index(line, "=")
		rest := line[eq+1:]
		value := strings.TrimSpace(rest)
		if value == "" || secrets.IsEncrypted(value) {
			continue
		}

		token, err := codec.Encrypt(value)
		if err != nil {
			return "", 0, err
		}

		lead := rest[:len(rest)-len(strings.TrimLeftFunc(rest, unicode.IsSpace))]
		trail := rest[len(strings.TrimRightFunc(rest, unicode.IsSpace)):]
		lines[i] = line[:eq+1] + lead + token + trail
		count++
	}

	return strings.Join(lines, "\n"), count, nil
}
