// Package uri provides file URI generation for vault entries.
package uri

import (
	"net/url"
	"strings"
)

// FileURI generates a file:// URI for a vault entry so frontends can hand it
// straight to the system opener.
func FileURI(root, relPath string) string {
	// Remove leading slash from relPath if present
	cleanPath := relPath
	cleanPath = strings.TrimPrefix(cleanPath, "/")

	// Construct absolute path
	absolutePath := root
	if cleanPath != "" {
		absolutePath = root + "/" + cleanPath
	}

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Remove leading slash since we add file:/// prefix
	encodedPath = strings.TrimPrefix(encodedPath, "/")

	return "file:///" + encodedPath
}
