package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "***"},
		{"12345678", "********"},
		{"ghp_abcdefghij", "**********ghij"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in); got != tt.want {
			t.Errorf("MaskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "key"); got != "key" {
		t.Errorf("Plural(1) = %q", got)
	}
	if got := Plural(0, "key"); got != "keys" {
		t.Errorf("Plural(0) = %q", got)
	}
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.env")
	if err := os.WriteFile(path, []byte("A=1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadInputFile(path)
	if err != nil {
		t.Fatalf("ReadInputFile failed: %v", err)
	}
	if string(data) != "A=1\n" {
		t.Errorf("Unexpected content %q", data)
	}

	if _, err := ReadInputFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer

	got, err := ReadLine(&out, strings.NewReader("  abc123  \nrest"), "Gist ID: ")
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("Expected trimmed line, got %q", got)
	}
	if out.String() != "Gist ID: " {
		t.Errorf("Unexpected prompt %q", out.String())
	}

	got, err = ReadLine(&out, strings.NewReader("no-newline"), "")
	if err != nil || got != "no-newline" {
		t.Errorf("Expected line without newline, got %q, %v", got, err)
	}
}

func TestPrompter_Choose(t *testing.T) {
	options := []string{"Production", "Development", "Staging"}
	tests := []struct {
		name  string
		input string
		def   string
		want  string
		errIs error
	}{
		{"by number", "2\n", "", "Development", nil},
		{"by name", "Staging\n", "", "Staging", nil},
		{"default", "\n", "Production", "Production", nil},
		{"out of range", "4\n", "", "", kerrors.ErrInvalidChoice},
		{"unknown name", "QA\n", "", "", kerrors.ErrInvalidChoice},
		{"empty without default", "", "", "", kerrors.ErrInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(&out, strings.NewReader(tt.input)).Choose("Select section:", options, tt.def)
			if tt.errIs != nil {
				if !errors.Is(err, tt.errIs) {
					t.Fatalf("Expected %v, got %v", tt.errIs, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Choose failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Choose() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "  2) Development\n") {
				t.Errorf("Expected numbered list, got %q", out.String())
			}
		})
	}
}

func TestPrompter_ChooseMany(t *testing.T) {
	options := []string{"A", "B", "C"}

	got, err := NewPrompter(io.Discard, strings.NewReader("3, 1 C\n")).ChooseMany("Select keys:", options)
	if err != nil {
		t.Fatalf("ChooseMany failed: %v", err)
	}
	if strings.Join(got, ",") != "C,A" {
		t.Errorf("ChooseMany() = %v", got)
	}

	got, err = NewPrompter(io.Discard, strings.NewReader("ALL\n")).ChooseMany("Select keys:", options)
	if err != nil || len(got) != 3 {
		t.Errorf("Expected all options, got %v (%v)", got, err)
	}

	if _, err := NewPrompter(io.Discard, strings.NewReader("\n")).ChooseMany("Select keys:", options); !errors.Is(err, kerrors.ErrInvalidChoice) {
		t.Errorf("Expected ErrInvalidChoice for an empty answer, got %v", err)
	}
}

func TestPrompter_SharesReaderAcrossQuestions(t *testing.T) {
	p := NewPrompter(io.Discard, strings.NewReader("1\nreplace\n\n"))

	section, err := p.Choose("Select section:", []string{"Prod"}, "")
	if err != nil {
		t.Fatal(err)
	}
	mode, err := p.Line("Mode", "append")
	if err != nil {
		t.Fatal(err)
	}
	output, err := p.Line("Output file", ".env")
	if err != nil {
		t.Fatal(err)
	}
	if section != "Prod" || mode != "replace" || output != ".env" {
		t.Errorf("Unexpected answers %q %q %q", section, mode, output)
	}
}
