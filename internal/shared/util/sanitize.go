package util

import (
	"errors"
	"strings"
)

var errUnsafeFileName = errors.New("unsafe file name")

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators in an uploaded file name and
// rejects traversal sequences and blank names.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || strings.Contains(s, "..") {
		return "", errUnsafeFileName
	}
	return separatorReplacer.Replace(s), nil
}
