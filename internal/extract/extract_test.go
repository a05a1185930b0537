package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	if err := os.WriteFile(path, []byte("  5 years Python backend\r\nLed a team\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	text, err := ReadInput(path)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if text != "5 years Python backend\nLed a team" {
		t.Fatalf("text = %q", text)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := ReadInput(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromPDFRejectsGarbage(t *testing.T) {
	if _, err := FromPDF([]byte("definitely not a pdf")); err == nil {
		t.Fatalf("expected error for non-pdf payload")
	}
}
