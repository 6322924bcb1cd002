// Package catalog provides aggregate read-only views over the vault: name
// matching and library statistics. It never opens vault files.
package catalog

import (
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/mediavault/mediavault-mcp/internal/mediafilter"
	"github.com/mediavault/mediavault-mcp/internal/types"
	"github.com/mediavault/mediavault-mcp/internal/uri"
	"github.com/mediavault/mediavault-mcp/internal/vault"
)

// topItems bounds the Largest and Newest lists in a scan summary.
const topItems = 5

// Service provides find and scan operations over an enumeration service.
type Service struct {
	vault *vault.Service
}

// New creates a catalog Service on top of the vault enumeration service.
func New(v *vault.Service) *Service {
	return &Service{vault: v}
}

// Find matches vault-relative file paths by name. Substring matching by
// default, regular expressions when UseRegex is set, case-insensitive unless
// CaseSensitive. Matches are returned in enumeration order up to Limit.
func (s *Service) Find(params types.FindParams) ([]types.FindResult, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, &CatalogError{Message: "find query cannot be empty"}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	// Build the match pattern
	var pattern *regexp.Regexp
	var err error
	if params.UseRegex {
		if params.CaseSensitive {
			pattern, err = regexp.Compile(query)
		} else {
			pattern, err = regexp.Compile("(?i)" + query)
		}
		if err != nil {
			return nil, &CatalogError{Message: "invalid regex pattern: " + err.Error()}
		}
	} else {
		// Escape regex special chars for literal matching
		escaped := regexp.QuoteMeta(query)
		if params.CaseSensitive {
			pattern, err = regexp.Compile(escaped)
		} else {
			pattern, err = regexp.Compile("(?i)" + escaped)
		}
		if err != nil {
			return nil, &CatalogError{Message: "find error: " + err.Error()}
		}
	}

	paths, err := s.vault.ListAllFiles()
	if err != nil {
		return nil, err
	}

	results := []types.FindResult{}
	for _, path := range paths {
		if len(results) >= limit {
			break
		}
		if pattern.MatchString(path) {
			results = append(results, types.FindResult{
				Path: path,
				Kind: mediafilter.KindOf(path),
			})
		}
	}

	return results, nil
}

// Scan stats every enumerated file in parallel and aggregates library-wide
// statistics. Files that disappear between enumeration and stat are skipped
// rather than failing the scan.
func (s *Service) Scan() (types.ScanSummary, error) {
	paths, err := s.vault.ListAllFiles()
	if err != nil {
		return types.ScanSummary{}, err
	}

	// Process files in parallel
	numWorkers := max(min(runtime.NumCPU(), len(paths)), 1)

	itemsCh := make(chan types.ItemInfo, len(paths))
	pathCh := make(chan string, len(paths))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for relPath := range pathCh {
				fullPath, err := s.vault.ResolvePath(relPath)
				if err != nil {
					continue
				}

				info, err := os.Stat(fullPath)
				if err != nil {
					continue
				}

				itemsCh <- types.ItemInfo{
					Path:     relPath,
					Name:     info.Name(),
					Size:     info.Size(),
					Modified: info.ModTime().UnixMilli(),
					Kind:     mediafilter.KindOf(relPath),
					URI:      uri.FileURI(s.vault.Root(), relPath),
				}
			}
		})
	}

	for _, relPath := range paths {
		pathCh <- relPath
	}
	close(pathCh)

	go func() {
		wg.Wait()
		close(itemsCh)
	}()

	items := make([]types.ItemInfo, 0, len(paths))
	for item := range itemsCh {
		items = append(items, item)
	}

	summary := types.ScanSummary{TotalFiles: len(items)}

	kindStats := make(map[string]*types.KindStat)
	for _, item := range items {
		summary.TotalSize += item.Size

		stat, ok := kindStats[item.Kind]
		if !ok {
			stat = &types.KindStat{Kind: item.Kind}
			kindStats[item.Kind] = stat
		}
		stat.Count++
		stat.Size += item.Size
	}

	summary.Kinds = make([]types.KindStat, 0, len(kindStats))
	for _, stat := range kindStats {
		summary.Kinds = append(summary.Kinds, *stat)
	}
	sort.Slice(summary.Kinds, func(i, j int) bool {
		return summary.Kinds[i].Kind < summary.Kinds[j].Kind
	})

	summary.Largest = topBy(items, topItems, func(a, b types.ItemInfo) bool {
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return a.Path < b.Path
	})
	summary.Newest = topBy(items, topItems, func(a, b types.ItemInfo) bool {
		if a.Modified != b.Modified {
			return a.Modified > b.Modified
		}
		return a.Path < b.Path
	})

	return summary, nil
}

// topBy returns the first n items under the given ordering without mutating
// the input.
func topBy(items []types.ItemInfo, n int, less func(a, b types.ItemInfo) bool) []types.ItemInfo {
	sorted := make([]types.ItemInfo, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CatalogError represents a catalog error.
type CatalogError struct {
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}
