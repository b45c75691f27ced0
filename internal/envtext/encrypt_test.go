package envtext

import (
	"strings"
	"testing"

	"github.com/PolarWolf314/gistenv/internal/secrets"
)

func TestEncryptContent_EncryptsValuesNotKeys(t *testing.T) {
	codec := secrets.NewCodec(testKey)

	encrypted, err := EncryptContent("API_KEY=secret_key\nDB_URL=localhost:5432", codec)
	if err != nil {
		t.Fatalf("EncryptContent failed: %v", err)
	}

	if !strings.Contains(encrypted, "API_KEY=ENC:") || !strings.Contains(encrypted, "DB_URL=ENC:") {
		t.Errorf("Expected both values encrypted, got:\n%s", encrypted)
	}
	if strings.Contains(encrypted, "secret_key") || strings.Contains(encrypted, "localhost:5432") {
		t.Errorf("Plaintext leaked into output:\n%s", encrypted)
	}

	vars := Parse(encrypted, ParseOptions{Decrypt: true, Codec: codec}).Variables
	if len(vars) != 2 || vars[0].Value != "secret_key" || vars[1].Value != "localhost:5432" {
		t.Errorf("Round trip through Parse failed: %+v", vars)
	}
}

func TestEncryptContent_PreservesStructure(t *testing.T) {
	content := "# [Production]\nAPI_KEY=secret_key\n\n# Comment\nnot an assignment\nDB_URL=localhost\n"

	encrypted, err := EncryptContent(content, secrets.NewCodec(testKey))
	if err != nil {
		t.Fatalf("EncryptContent failed: %v", err)
	}

	in := strings.Split(content, "\n")
	out := strings.Split(encrypted, "\n")
	if len(in) != len(out) {
		t.Fatalf("Line count changed: %d -> %d", len(in), len(out))
	}
	for _, i := range []int{0, 2, 3, 4, 6} {
		if in[i] != out[i] {
			t.Errorf("Line %d changed: %q -> %q", i+1, in[i], out[i])
		}
	}
	if !strings.HasPrefix(out[1], "API_KEY=ENC:") || !strings.HasPrefix(out[5], "DB_URL=ENC:") {
		t.Errorf("Assignments not encrypted:\n%s", encrypted)
	}
}

func TestEncryptContent_PreservesSpacingAroundValue(t *testing.T) {
	encrypted, err := EncryptContent("  API_KEY  =  value  \r\nB=2\r\n", secrets.NewCodec(testKey))
	if err != nil {
		t.Fatalf("EncryptContent failed: %v", err)
	}

	lines := strings.Split(encrypted, "\n")
	if !strings.HasPrefix(lines[0], "  API_KEY  =  ENC:") {
		t.Errorf("Key portion or leading whitespace changed: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "  \r") {
		t.Errorf("Trailing whitespace not preserved: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "B=ENC:") || !strings.HasSuffix(lines[1], "\r") {
		t.Errorf("CRLF line mangled: %q", lines[1])
	}
}

func TestEncryptContent_SkipsEmptyAndEncryptedValues(t *testing.T) {
	codec := secrets.NewCodec(testKey)
	token, err := codec.Encrypt("already")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	content := "EMPTY=\nDONE=" + token + "\nNEW=plain"
	encrypted, count, err := EncryptLines(content, codec)
	if err != nil {
		t.Fatalf("EncryptLines failed: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 value encrypted, got %d", count)
	}
	lines := strings.Split(encrypted, "\n")
	if lines[0] != "EMPTY=" {
		t.Errorf("Empty value should stay empty, got %q", lines[0])
	}
	if lines[1] != "DONE="+token {
		t.Errorf("Encrypted value should not be encrypted again, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "NEW=ENC:") {
		t.Errorf("Plain value should be encrypted, got %q", lines[2])
	}
}

func TestEncryptContent_IdentityCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"no key configured", "API_KEY=test_key\nDB_URL=localhost", ""},
		{"key too short", "API_KEY=test_key", "short"},
		{"empty content", "", testKey},
		{"only comments", "# Just a comment\n# Another comment", testKey},
		{"only sections", "# [Production]\n# [Staging]", testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncryptContent(tt.content, secrets.NewCodec(tt.key))
			if err != nil {
				t.Fatalf("EncryptContent failed: %v", err)
			}
			if got != tt.content {
				t.Errorf("EncryptContent() = %q, want unchanged %q", got, tt.content)
			}
		})
	}
}
