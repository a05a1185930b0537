// Package extract reads CV and job-description input from files or stdin
// for the binding layers. PDFs are converted to plain text; everything else
// is treated as UTF-8 text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadInput loads text from path. "-" reads stdin; a .pdf extension routes
// through the PDF extractor.
func ReadInput(path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return normalize(string(raw)), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := FromPDF(raw)
		if err != nil {
			return "", fmt.Errorf("extracting %s: %w", path, err)
		}
		return text, nil
	}
	return normalize(string(raw)), nil
}

// FromPDF extracts plain text from an in-memory PDF payload.
func FromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	body, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	var b strings.Builder
	if _, err := io.Copy(&b, body); err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	text := normalize(b.String())
	if text == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return text, nil
}

func normalize(raw string) string {
	out := strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.TrimSpace(out)
}
