// Package mediafilter provides path filtering and media-kind classification
// for vault entries.
package mediafilter

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mediavault/mediavault-mcp/internal/types"
)

// Media kinds derived from file extensions.
const (
	KindImage = "image"
	KindVideo = "video"
	KindAudio = "audio"
	KindOther = "other"
)

// Filter decides which vault paths are visible to clients.
type Filter struct {
	ignoredPatterns   []string
	allowedExtensions []string
}

// New creates a Filter with the given configuration merged over the defaults.
// The default ignore list covers NAS and OS metadata artifacts; the extension
// list starts empty so every regular file is visible unless configured.
func New(config *types.FilterConfig) *Filter {
	f := &Filter{
		ignoredPatterns: []string{
			".DS_Store", "**/.DS_Store",
			"Thumbs.db", "**/Thumbs.db",
			"desktop.ini", "**/desktop.ini",
			"._*", "**/._*",
			"@eaDir/**", "**/@eaDir/**",
			"#recycle/**",
			".TemporaryItems/**",
		},
	}

	if config != nil {
		f.ignoredPatterns = append(f.ignoredPatterns, config.IgnoredPatterns...)
		f.allowedExtensions = append(f.allowedExtensions, config.AllowedExtensions...)
	}

	return f
}

// globMatch converts a glob pattern to regex and tests against the path.
func (f *Filter) globMatch(pattern, path string) bool {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	// Ensure we match the full path
	regexPattern = "^" + regexPattern + "$"

	re, err := regexp.Compile(regexPattern)
	if err != nil {
		return false
	}

	return re.MatchString(path)
}

// IsAllowed checks if a path is allowed based on the filter rules.
func (f *Filter) IsAllowed(path string) bool {
	// Normalize path separators
	normalizedPath := strings.ReplaceAll(path, "\\", "/")

	// Check if path matches any ignored pattern
	for _, pattern := range f.ignoredPatterns {
		if f.globMatch(pattern, normalizedPath) {
			return false
		}
	}

	// For files, check extension if allowedExtensions is configured
	if len(f.allowedExtensions) > 0 && f.isFile(normalizedPath) {
		hasAllowedExtension := false
		lowerPath := strings.ToLower(normalizedPath)
		for _, ext := range f.allowedExtensions {
			if strings.HasSuffix(lowerPath, strings.ToLower(ext)) {
				hasAllowedExtension = true
				break
			}
		}
		if !hasAllowedExtension {
			return false
		}
	}

	return true
}

// SkipDir reports whether an entire directory subtree is excluded, so a
// traversal can prune it without reading its contents.
func (f *Filter) SkipDir(relPath string) bool {
	normalizedPath := strings.ReplaceAll(relPath, "\\", "/")

	for _, pattern := range f.ignoredPatterns {
		dirPattern, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			continue
		}
		if f.globMatch(dirPattern, normalizedPath) {
			return true
		}
	}

	return false
}

// isFile determines if a path represents a file (has a valid extension).
func (f *Filter) isFile(path string) bool {
	// Paths ending with '/' are always directories
	if strings.HasSuffix(path, "/") {
		return false
	}

	// Get the last component of the path
	lastSlashIndex := strings.LastIndex(path, "/")
	var lastComponent string
	if lastSlashIndex == -1 {
		lastComponent = path
	} else {
		lastComponent = path[lastSlashIndex+1:]
	}

	// Check if the last component has a file extension
	lastDotIndex := strings.LastIndex(lastComponent, ".")
	if lastDotIndex == -1 || lastDotIndex == 0 {
		// No dot, or dot at the start (like .gitignore)
		return false
	}

	extension := lastComponent[lastDotIndex+1:]
	// Extension should be 1-10 characters and contain only alphanumeric characters
	if len(extension) < 1 || len(extension) > 10 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-zA-Z0-9]+$", extension)
	return matched
}

// FilterPaths filters a slice of paths to only include allowed ones.
func (f *Filter) FilterPaths(paths []string) []string {
	var allowed []string
	for _, path := range paths {
		if f.IsAllowed(path) {
			allowed = append(allowed, path)
		}
	}
	return allowed
}

// Extension tables cover what the desktop frontend can badge and open.
var kindByExtension = map[string]string{
	// images
	".jpg": KindImage, ".jpeg": KindImage, ".png": KindImage, ".gif": KindImage,
	".bmp": KindImage, ".webp": KindImage, ".tif": KindImage, ".tiff": KindImage,
	".heic": KindImage, ".heif": KindImage, ".raw": KindImage, ".cr2": KindImage,
	".nef": KindImage, ".arw": KindImage, ".dng": KindImage, ".svg": KindImage,
	// videos
	".mp4": KindVideo, ".mov": KindVideo, ".mkv": KindVideo, ".avi": KindVideo,
	".webm": KindVideo, ".m4v": KindVideo, ".mts": KindVideo, ".m2ts": KindVideo,
	".wmv": KindVideo, ".mpg": KindVideo, ".mpeg": KindVideo, ".3gp": KindVideo,
	// audio
	".mp3": KindAudio, ".flac": KindAudio, ".wav": KindAudio, ".aac": KindAudio,
	".ogg": KindAudio, ".m4a": KindAudio, ".wma": KindAudio, ".opus": KindAudio,
}

// KindOf classifies a path into a coarse media kind by extension alone. It
// never opens the file.
func KindOf(path string) string {
	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	ext := strings.ToLower(filepath.Ext(normalizedPath))
	if kind, ok := kindByExtension[ext]; ok {
		return kind
	}
	return KindOther
}
