// Package util provides shared path and string helpers used across the application.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// StripHash removes the # prefix from a hex colour string.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// ReplaceExt swaps the extension of name for ext, which should include the dot.
func ReplaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
