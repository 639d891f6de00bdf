package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename strips path separators and unsafe characters so a
// client-supplied name can never escape the content directory.
func SanitizeFilename(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return base
}

// Example output for "ex.txt": "21313123123_V1StGXR8_ex.txt". The nanoid
// keeps names unique even when two uploads land on the same nanosecond.
func AddUniquePrefixToFileName(fileName string) (string, error) {
	id, err := GenerateNChar(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixNano(), id, fileName), nil
}

// FileExtension returns the lowercased extension without the leading dot.
func FileExtension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}
