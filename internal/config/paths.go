package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// SourceFileYML and SourceFileYAML are the canonical source file names.
	SourceFileYML  = "netbird.yml"
	SourceFileYAML = "netbird.yaml"
)

// searchPaths is the lookup order when no explicit source path is given.
var searchPaths = []string{
	SourceFileYML,
	SourceFileYAML,
	filepath.Join("inventory", SourceFileYML),
	filepath.Join("inventory", SourceFileYAML),
}

// RecognizedPath reports whether path names an inventory source this plugin
// should claim. Matching is a pure suffix check, so prefixed conventions
// like "production-netbird.yml" are claimed too, while other YAML files are
// left to other plugins.
func RecognizedPath(path string) bool {
	return strings.HasSuffix(path, SourceFileYML) || strings.HasSuffix(path, SourceFileYAML)
}

// ResolveSourcePath returns the source file to load: the explicit path when
// given, otherwise the first hit in the search order.
func ResolveSourcePath(explicit string) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", fmt.Errorf("source file %s does not exist", explicit)
		}
		return explicit, nil
	}

	for _, path := range searchPaths {
		if fileExists(path) {
			if abs, err := filepath.Abs(path); err == nil {
				return abs, nil
			}
			return path, nil
		}
	}

	return "", fmt.Errorf("no source file found (looked for %s)", strings.Join(searchPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
