package util

import (
	"errors"
	"strings"
)

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName rejects traversal patterns and replaces path separators
// so uploaded names are safe as storage key components.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	cleaned := separatorReplacer.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "", errors.New("invalid file name")
	}
	return cleaned, nil
}
