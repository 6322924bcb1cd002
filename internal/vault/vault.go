// Package vault provides read-only enumeration of the media vault.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mediavault/mediavault-mcp/internal/mediafilter"
	"github.com/mediavault/mediavault-mcp/internal/types"
	"github.com/mediavault/mediavault-mcp/internal/uri"
)

// Service provides read-only enumeration of the vault directory tree. Every
// path crossing the boundary is vault-relative with forward slashes.
type Service struct {
	root           string
	filter         *mediafilter.Filter
	followSymlinks bool
}

// New creates a Service rooted at the given directory.
func New(root string, filter *mediafilter.Filter, followSymlinks bool) *Service {
	absRoot, _ := filepath.Abs(root)
	if filter == nil {
		filter = mediafilter.New(nil)
	}
	return &Service{
		root:           absRoot,
		filter:         filter,
		followSymlinks: followSymlinks,
	}
}

// Root returns the absolute vault root.
func (s *Service) Root() string {
	return s.root
}

// ResolvePath resolves a vault-relative path and validates that it stays
// inside the vault.
func (s *Service) ResolvePath(relPath string) (string, error) {
	// Trim whitespace
	relPath = strings.TrimSpace(relPath)

	// Normalize and resolve the path within the vault
	normalizedPath := strings.ReplaceAll(relPath, "\\", "/")
	normalizedPath = strings.TrimPrefix(normalizedPath, "/")

	fullPath := filepath.Join(s.root, normalizedPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within vault. A bare ".." prefix is not
	// enough, names like "..thumbnails" are legitimate entries.
	rel, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathEscapeError{Path: relPath}
	}

	return absPath, nil
}

// Rel converts an absolute path inside the vault back to the relative
// forward-slash form. The root itself maps to the empty string.
func (s *Service) Rel(fullPath string) string {
	rel, err := filepath.Rel(s.root, fullPath)
	if err != nil {
		return fullPath
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// ListAllFiles enumerates every visible regular file under the vault root and
// returns vault-relative paths. The traversal keeps an explicit stack of
// pending directories; result order follows the traversal and is not part of
// the contract. The first unreadable directory aborts the whole enumeration.
func (s *Service) ListAllFiles() ([]string, error) {
	files := []string{}

	stack := []string{s.root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, &DirectoryReadError{Path: s.Rel(dir), Err: err}
		}

		for _, entry := range entries {
			fullPath := filepath.Join(dir, entry.Name())
			relPath := s.Rel(fullPath)

			isDir, isFile := entryKind(entry, fullPath, s.followSymlinks)

			switch {
			case isDir:
				if !s.filter.SkipDir(relPath) {
					stack = append(stack, fullPath)
				}
			case isFile:
				if s.filter.IsAllowed(relPath) {
					files = append(files, relPath)
				}
			}
		}
	}

	return files, nil
}

// ListDirectory lists a single directory level of the vault. Entries carry
// only the name and the directory/file distinction. includeDirs and
// includeFiles select which entry classes are kept; an empty directory (or
// two false flags) yields an empty slice.
func (s *Service) ListDirectory(relPath string, includeDirs, includeFiles bool) ([]types.Entry, error) {
	// Normalize path: treat '.' as the vault root
	if relPath == "." {
		relPath = ""
	}

	fullPath, err := s.ResolvePath(relPath)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, &DirectoryReadError{Path: relPath, Err: err}
	}

	entries := []types.Entry{}

	for _, entry := range dirEntries {
		var entryPath string
		if relPath != "" {
			entryPath = relPath + "/" + entry.Name()
		} else {
			entryPath = entry.Name()
		}

		if !s.filter.IsAllowed(entryPath) {
			continue
		}

		isDir, isFile := entryKind(entry, filepath.Join(fullPath, entry.Name()), s.followSymlinks)

		// A directory whose subtree is ignored never appears in listings.
		if isDir && s.filter.SkipDir(entryPath) {
			continue
		}

		switch {
		case isDir && includeDirs:
			entries = append(entries, types.Entry{Name: entry.Name(), IsDir: true})
		case isFile && includeFiles:
			entries = append(entries, types.Entry{Name: entry.Name(), IsDir: false})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// entryKind classifies a directory entry. Symlinks fall through both classes
// unless followSymlinks is set, in which case the target decides; broken
// links stay invisible either way.
func entryKind(entry os.DirEntry, fullPath string, followSymlinks bool) (isDir, isFile bool) {
	isDir = entry.IsDir()
	isFile = entry.Type().IsRegular()

	if !isDir && !isFile && followSymlinks {
		info, err := os.Stat(fullPath)
		if err != nil {
			return false, false
		}
		isDir = info.IsDir()
		isFile = info.Mode().IsRegular()
	}

	return isDir, isFile
}

// StatEntry returns metadata for a single vault entry. Kind is derived from
// the extension alone; the file is never opened.
func (s *Service) StatEntry(relPath string) (types.ItemInfo, error) {
	fullPath, err := s.ResolvePath(relPath)
	if err != nil {
		return types.ItemInfo{}, err
	}

	if !s.filter.IsAllowed(relPath) {
		return types.ItemInfo{}, fmt.Errorf("access denied: %s", relPath)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ItemInfo{}, fmt.Errorf("entry not found: %s", relPath)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.ItemInfo{}, fmt.Errorf("permission denied: %s", relPath)
		}
		return types.ItemInfo{}, fmt.Errorf("failed to stat entry: %s - %w", relPath, err)
	}

	item := types.ItemInfo{
		Path:     s.Rel(fullPath),
		Name:     info.Name(),
		IsDir:    info.IsDir(),
		Modified: info.ModTime().UnixMilli(),
		URI:      uri.FileURI(s.root, s.Rel(fullPath)),
	}
	if !item.IsDir {
		item.Size = info.Size()
		item.Kind = mediafilter.KindOf(item.Path)
	}

	return item, nil
}

// Exists checks whether a vault-relative path exists and is visible.
func (s *Service) Exists(relPath string) bool {
	fullPath, err := s.ResolvePath(relPath)
	if err != nil {
		return false
	}

	if !s.filter.IsAllowed(relPath) {
		return false
	}

	_, err = os.Stat(fullPath)
	return err == nil
}

// IsDirectory checks whether a vault-relative path is a directory.
func (s *Service) IsDirectory(relPath string) (bool, error) {
	fullPath, err := s.ResolvePath(relPath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return false, nil
	}

	return info.IsDir(), nil
}
