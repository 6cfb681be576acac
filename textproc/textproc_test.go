package textproc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextFromTxtFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.txt")

	content := "Python developer with 5 years of experience.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	text, err := ExtractTextFromFile(path)
	if err != nil {
		t.Fatalf("Failed to extract text: %v", err)
	}
	if text != strings.TrimSpace(content) {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.odt")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := ExtractTextFromFile(path)
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractTextFromFile("/nonexistent/resume.txt")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace collapse", "Python   developer\n\nwith\ttabs", "Python developer with tabs"},
		{"strips specials", "Python & Django © resume™", "Python  Django  resume"},
		{"keeps punctuation", "Skills: Python, Go (5 years).", "Skills: Python, Go (5 years)."},
		{"trims", "  padded  ", "padded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.in); got != tc.want {
				t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
