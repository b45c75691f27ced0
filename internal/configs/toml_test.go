package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Name  string
		Count int
	}

	originalData := TestStruct{Name: "staging", Count: 3}

	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	if err := LoadTOML(testFile, &loadedData); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	var data struct{ Name string }
	if err := LoadTOML(filepath.Join(t.TempDir(), "nonexistent.toml"), &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesPrivateFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "test.toml")

	if err := SaveTOML(testFile, struct{ Name string }{Name: "Test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}

	dirInfo, err := os.Stat(filepath.Dir(testFile))
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0700 {
		t.Errorf("Expected directory mode 0700, got %o", perm)
	}
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(testFile, []byte("[gist]\nid = \"abc\"\ntokn = \"typo\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var cfg UserConfig
	err := LoadTOML(testFile, &cfg)
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "gist.tokn") {
		t.Errorf("Expected the unknown key in the error, got: %v", err)
	}
}

func TestSaveTOMLTightensExistingFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(testFile, []byte("old = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SaveTOML(testFile, UserConfig{Gist: GistSettings{ID: "abc"}}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}

	var cfg UserConfig
	if err := LoadTOML(testFile, &cfg); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if cfg.Gist.ID != "abc" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}
