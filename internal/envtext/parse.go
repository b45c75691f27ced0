package envtext

import (
	"regexp"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/secrets"
)

var headerPattern = regexp.MustCompile(`^#\s*\[([^\]]+)\]\s*$`)

// DiagnosticKind classifies a line Parse did not turn into a variable.
type DiagnosticKind int

const (
	// MalformedLine is a non-comment line without "=".
	MalformedLine DiagnosticKind = iota
	// EmptyKey is an assignment whose key is blank.
	EmptyKey
	// DecryptFailed is an encrypted value that could not be opened; the
	// variable keeps its ciphertext.
	DecryptFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case EmptyKey:
		return "empty key"
	case DecryptFailed:
		return "decryption failed"
	default:
		return "unknown"
	}
}

// Diagnostic describes one line that parsed leniently.
type Diagnostic struct {
	Line int // 1-based
	Kind DiagnosticKind
	Key  string
	Err  error
}

// Document is the parsed form of an env text.
type Document struct {
	Variables   []Variable
	Diagnostics []Diagnostic
}

// ParseOptions controls value decryption during Parse.
type ParseOptions struct {
	// Decrypt opens ENC: values when Codec has a usable key.
	Decrypt bool
	Codec   secrets.Codec
}

// Parse scans text top to bottom and returns its variables tagged with the
// section in effect on each line.
func Parse(text string, opts ParseOptions) *Document {
	doc := &Document{}
	decrypt := opts.Decrypt && opts.Codec.Available()

	var section string
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			if name, ok := ParseHeader(trimmed); ok {
				section = name
			}
			continue
		}

		key, value, ok := ParseAssignment(trimmed)
		if !ok {
			kind := MalformedLine
			if strings.Contains(trimmed, "=") {
				kind = EmptyKey
			}
			doc.Diagnostics = append(doc.Diagnostics, Diagnostic{Line: i + 1, Kind: kind})
			continue
		}

		if decrypt && secrets.IsEncrypted(value) {
			plain, err := opts.Codec.Decrypt(value)
			if err != nil {
				doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
					Line: i + 1,
					Kind: DecryptFailed,
					Key:  key,
					Err:  err,
				})
			} else {
				value = plain
			}
		}

		doc.Variables = append(doc.Variables, Variable{Key: key, Value: value, Section: section})
	}

	return doc
}

// ParseHeader reports whether line is a section header and returns its name.
func ParseHeader(line string) (string, bool) {
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// Header renders the canonical header line for a section.
func Header(name string) string {
	return "# [" + name + "]"
}

// ParseAssignment splits line at its first "=" and trims both sides.
// It reports false when there is no "=" or the key is blank.
func ParseAssignment(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

// Warnings returns the diagnostics worth surfacing to a user.
func (d *Document) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.Diagnostics {
		if diag.Kind == DecryptFailed {
			out = append(out, diag)
		}
	}
	return out
}

func (d *Document) Sections() []string { return Sections(d.Variables) }

func (d *Document) Keys() []string { return Keys(d.Variables) }

func (d *Document) InSection(name string) []Variable { return InSection(d.Variables, name) }

func (d *Document) WithKeys(keys ...string) []Variable { return WithKeys(d.Variables, keys...) }
