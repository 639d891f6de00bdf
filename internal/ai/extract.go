package ai

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// Context builder caps, extraction is best effort.
	MaxPdfPages     = 10
	MaxContextChars = 10000
)

// ExtractPdfText pulls plain text from the first MaxPdfPages pages of a PDF
// stream, capped at maxChars. The stream is spooled to a temp file because
// the parser needs random access.
func ExtractPdfText(src io.Reader, maxChars int) (string, error) {
	tmp, err := os.CreateTemp("", "designdeck-extract-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return "", err
	}

	f, reader, err := pdf.Open(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := reader.NumPage()
	if numPages > MaxPdfPages {
		numPages = MaxPdfPages
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages rather than fail the whole file
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n\n")

		if sb.Len() >= maxChars {
			break
		}
	}

	out := sb.String()
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return out, nil
}
