package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLog_CreatesFileAndDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "audit.jsonl")

	Log(logPath, Entry{Operation: OpPush, Gist: "abc123", Section: "Production", KeysCount: 2})

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	Log(logPath, Entry{Operation: OpPush, Gist: "g1"})
	Log(logPath, Entry{Operation: OpDeleteSection, Gist: "g1", Section: "Old"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	var second Entry
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if second.Operation != OpDeleteSection || second.Section != "Old" {
		t.Errorf("Unexpected entry: %+v", second)
	}
}

func TestLog_ConcurrentWritersKeepLinesIntact(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Log(logPath, Entry{Operation: OpEncrypt, Gist: "abc123", Filename: strings.Repeat("x", 512)})
		}()
	}
	wg.Wait()

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 20 {
		t.Errorf("Expected 20 entries, got %d", len(entries))
	}
	if _, err := os.Stat(LockPath(logPath)); err != nil {
		t.Errorf("Expected lock file next to the log: %v", err)
	}
}

func TestLog_FillsIDAndTimestamp(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	Log(logPath, Entry{Operation: OpEncrypt})
	Log(logPath, Entry{Operation: OpEncrypt})

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.ID) != 36 {
			t.Errorf("Expected UUID id, got %q", e.ID)
		}
		if !strings.HasSuffix(e.Timestamp, "Z") {
			t.Errorf("Expected UTC timestamp, got %q", e.Timestamp)
		}
	}
	if entries[0].ID == entries[1].ID {
		t.Error("Expected distinct entry IDs")
	}
}

func TestLog_KeepsExplicitTimestamp(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	Log(logPath, Entry{Operation: OpPush, Timestamp: "2024-01-15T10:30:00.000000Z"})

	entries, _ := ReadEntries(logPath)
	if len(entries) != 1 || entries[0].Timestamp != "2024-01-15T10:30:00.000000Z" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestLog_EmptyPathIsNoop(t *testing.T) {
	Log("", Entry{Operation: OpPush})
}

func TestLog_UnwritableLocationIsIgnored(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	// The parent is a regular file, so the log cannot be created.
	Log(filepath.Join(blocker, "audit.jsonl"), Entry{Operation: OpPush})
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"op":"push","gist":"g"}
not json
{"op":"encrypt","gist":"g","keys_count":3}

`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].KeysCount != 3 {
		t.Errorf("Expected keys_count 3, got %d", entries[1].KeysCount)
	}
}

func TestParseEntries_Empty(t *testing.T) {
	if entries := ParseEntries(nil); len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestTail(t *testing.T) {
	entries := []Entry{{Operation: "a"}, {Operation: "b"}, {Operation: "c"}}

	tests := []struct {
		n    int
		want string
	}{
		{0, "abc"},
		{-1, "abc"},
		{2, "bc"},
		{5, "abc"},
	}
	for _, tt := range tests {
		var got strings.Builder
		for _, e := range Tail(entries, tt.n) {
			got.WriteString(e.Operation)
		}
		if got.String() != tt.want {
			t.Errorf("Tail(%d) = %q, want %q", tt.n, got.String(), tt.want)
		}
	}
}
