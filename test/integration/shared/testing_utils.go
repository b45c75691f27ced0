// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the gistenv command tree.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/gistenv/cmd"
	"github.com/spf13/cobra"
)

// TestEnv describes the isolated directories a test runs in.
type TestEnv struct {
	// WorkDir is the current directory during the test.
	WorkDir string
	// HomeDir stands in for the user's home directory.
	HomeDir string
	// AuditLog is the audit log path gistenv writes to.
	AuditLog string
}

// configVars are cleared so the developer's own settings never leak in.
var configVars = []string{
	"GISTENV_GIST_ID", "GIST_ID",
	"GISTENV_GITHUB_TOKEN", "GITHUB_TOKEN",
	"GISTENV_ENCRYPTION_KEY", "ENCRYPTION_KEY",
	"GISTENV_API_URL",
}

// SetupTestEnvironment changes into a fresh temporary directory and points
// every configuration location at temporary paths.
func SetupTestEnvironment(t *testing.T) *TestEnv {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	root := t.TempDir()
	env := &TestEnv{
		WorkDir:  filepath.Join(root, "project"),
		HomeDir:  filepath.Join(root, "home"),
		AuditLog: filepath.Join(root, "data", "audit.jsonl"),
	}
	for _, dir := range []string{env.WorkDir, env.HomeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	for _, name := range configVars {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("GISTENV_AUDIT_LOG", env.AuditLog)
	t.Setenv("NO_COLOR", "1")

	if err := os.Chdir(env.WorkDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
	})

	return env
}

// UseGist points gistenv at fake through environment variables.
func UseGist(t *testing.T, fake *FakeGist) {
	t.Helper()
	t.Setenv("GISTENV_GIST_ID", fake.ID)
	t.Setenv("GISTENV_API_URL", fake.URL())
	if fake.Token != "" {
		t.Setenv("GISTENV_GITHUB_TOKEN", fake.Token)
	}
}

// WriteFile writes content to path relative to the working directory.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI resets command state and returns the root command set up to
// run args.
func CreateTestCLI(args ...string) *cobra.Command {
	cmd.ResetGlobalState()

	root := cmd.GetGistenvCmd()
	root.SetArgs(args)
	return root
}

// RunCLI executes gistenv with args and returns its combined output.
func RunCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return CaptureOutput(func() error {
		return CreateTestCLI(args...).Execute()
	})
}
