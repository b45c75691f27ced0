package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Operation names recorded in the log.
const (
	OpCopySection   = "copy-section"
	OpCopyKeys      = "copy-keys"
	OpPush          = "push"
	OpDeleteSection = "delete-section"
	OpEncrypt       = "encrypt"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`
	Gist      string `json:"gist"`

	Filename   string `json:"filename,omitempty"`    // Env file inside the gist.
	Section    string `json:"section,omitempty"`     // For copy-section/push/delete-section.
	KeysCount  int    `json:"keys_count,omitempty"`  // Variables written or encrypted.
	Mode       string `json:"mode,omitempty"`        // append or replace.
	OutputPath string `json:"output_path,omitempty"` // For copy-section/copy-keys.
}

// Log appends an entry to the JSON Lines file at path, creating it and its
// directory as needed. An empty path disables logging. Failures are dropped:
// an operation never fails because its audit record could not be written.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Serialize writers from concurrent gistenv processes.
	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return
	}
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// LockPath is the lock file guarding appends to the log at path.
func LockPath(path string) string {
	return path + ".lock"
}

// ReadEntries reads all entries from the log at path.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Tail returns the last n entries, or all of them when n <= 0.
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
