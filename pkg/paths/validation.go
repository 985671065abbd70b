package paths

import (
	"path/filepath"
	"strings"

	"github.com/pathmend/pathmend/pkg/errors"
)

// maxPathLength is the common filesystem limit for a full path.
const maxPathLength = 4096

// ValidatePath performs validation on an externally supplied path.
// It checks for:
// - Empty paths
// - Embedded null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrValidation, "path cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrValidation, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > maxPathLength {
		return errors.New(errors.ErrValidation, "path exceeds maximum length")
	}

	return nil
}

// SanitizePath cleans a path for use. It expands a leading ~,
// resolves . and .. elements, and removes redundant separators.
func SanitizePath(path string) string {
	// First expand home directory if present
	path = ExpandHome(path)

	// Clean the path using filepath.Clean
	cleaned := filepath.Clean(path)

	// Ensure we don't return an empty string
	if cleaned == "" {
		return "."
	}

	return cleaned
}

// ContainsPath checks if child is contained within parent.
// Both paths are normalized before comparison.
func ContainsPath(parent, child string) bool {
	// Normalize both paths
	parent = SanitizePath(parent)
	child = SanitizePath(child)

	// Try to get relative path
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	// If relative path starts with .., child is outside parent
	return rel != ".." && !strings.HasPrefix(rel, "../")
}
