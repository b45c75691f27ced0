package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/envtext"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
)

// Separator is the comment written before appended variables.
const Separator = "# --- Added by gistenv ---"

// DefaultPath is the file written when the user names none.
const DefaultPath = ".env"

// Mode selects how Write treats an existing file.
type Mode string

const (
	ModeAppend  Mode = "append"
	ModeReplace Mode = "replace"
)

// ParseMode validates a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAppend:
		return ModeAppend, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", kerrors.ErrInvalidMode, s, ModeAppend, ModeReplace)
	}
}

// Load reads path into a flat key/value map. Later duplicates win and a
// missing file yields an empty map.
func Load(fsys FileSystem, path string) (map[string]string, error) {
	content, err := readExisting(fsys, path)
	if err != nil {
		return nil, err
	}
	return loadContent(content), nil
}

func loadContent(content string) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := envtext.ParseAssignment(trimmed)
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

func readExisting(fsys FileSystem, path string) (string, error) {
	content, err := fsys.ReadText(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// WriteResult summarizes a Write call.
type WriteResult struct {
	Path    string
	Mode    Mode
	Written int
	Skipped []string
}

// Merger writes variables into local env files.
type Merger struct {
	FS FileSystem
}

// NewMerger returns a Merger on the local disk.
func NewMerger() *Merger {
	return &Merger{FS: OSFileSystem{}}
}

// Render computes the file content Write would produce without writing it.
// In append mode a variable is skipped only when it has no section and its
// key is already in the file; sectioned variables are always written under
// their header.
func (m *Merger) Render(vars []envtext.Variable, path string, mode Mode) (string, *WriteResult, error) {
	result := &WriteResult{Path: path, Mode: mode}

	switch mode {
	case ModeReplace:
		result.Written = len(vars)
		return envtext.Serialize(vars), result, nil

	case ModeAppend:
		existing, err := readExisting(m.FS, path)
		if err != nil {
			return "", nil, err
		}
		// Computed once so duplicates within vars do not block each other.
		existingVars := loadContent(existing)

		var r envtext.Renderer
		if existing != "" {
			r.WriteRaw(existing)
			if !strings.HasSuffix(existing, "\n") {
				r.WriteRaw("\n")
			}
			r.WriteRaw("\n" + Separator + "\n")
		}

		for _, v := range vars {
			if _, exists := existingVars[v.Key]; exists && !v.HasSection() {
				result.Skipped = append(result.Skipped, v.Key)
				continue
			}
			r.Write(v)
			result.Written++
		}
		return r.String(), result, nil

	default:
		return "", nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidMode, mode)
	}
}

// Write merges vars into path according to mode.
func (m *Merger) Write(vars []envtext.Variable, path string, mode Mode) (*WriteResult, error) {
	content, result, err := m.Render(vars, path, mode)
	if err != nil {
		return nil, err
	}
	if err := m.FS.WriteText(path, content); err != nil {
		return nil, err
	}
	return result, nil
}
