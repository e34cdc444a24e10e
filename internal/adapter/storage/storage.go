// Package storage implements the blob stores that hold recording audio.
// Keys are slash-separated relative paths; each store maps them onto its
// own namespace.
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

var (
	// ErrNotFound is returned when no blob exists under the key.
	ErrNotFound = fmt.Errorf("blob %w", domain.ErrNotFound)
	// ErrSignedURLUnsupported is returned by stores that cannot mint
	// direct download URLs; callers stream through Open instead.
	ErrSignedURLUnsupported = domain.ErrSignedURLUnsupported
)

// validateKey rejects keys that are empty, absolute, or escape the store root.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage: empty key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	if path.Clean(key) != key || key == "." || strings.HasPrefix(key, "../") || key == ".." {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
