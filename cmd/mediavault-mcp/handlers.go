package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mediavault/mediavault-mcp/internal/types"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	dirPath := strings.TrimSpace(input.Path)

	includeDirs := !input.FilesOnly
	includeFiles := !input.DirsOnly

	entries, err := vaultService.ListDirectory(dirPath, includeDirs, includeFiles)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	listEntries := make([]ListEntry, 0, len(entries))
	for _, entry := range entries {
		listEntries = append(listEntries, ListEntry{
			Name:  entry.Name,
			IsDir: entry.IsDir,
		})
	}

	return nil, ListOutput{
		Path:    dirPath,
		Entries: listEntries,
	}, nil
}

func handleWalk(ctx context.Context, req *mcp.CallToolRequest, input WalkInput) (*mcp.CallToolResult, WalkOutput, error) {
	files, err := vaultService.ListAllFiles()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, WalkOutput{}, err
	}

	return nil, WalkOutput{
		Files: files,
		Count: len(files),
	}, nil
}

func handleTree(ctx context.Context, req *mcp.CallToolRequest, input TreeInput) (*mcp.CallToolResult, TreeOutput, error) {
	startPath := strings.TrimSpace(input.Path)
	if startPath == "." {
		startPath = ""
	}

	root, err := buildTree(startPath, input.IncludeFiles, input.MaxDepth, 1)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, TreeOutput{}, err
	}

	return nil, TreeOutput{Root: root}, nil
}

// buildTree lists dirPath and recurses into its subdirectories. depth counts
// levels below the starting directory, beginning at 1.
func buildTree(dirPath string, includeFiles bool, maxDepth, depth int) (TreeNode, error) {
	node := TreeNode{
		Name: baseName(dirPath),
		Path: dirPath,
	}

	entries, err := vaultService.ListDirectory(dirPath, true, includeFiles)
	if err != nil {
		return TreeNode{}, err
	}

	for _, entry := range entries {
		childPath := entry.Name
		if dirPath != "" {
			childPath = dirPath + "/" + entry.Name
		}

		if !entry.IsDir {
			node.Files = append(node.Files, entry.Name)
			continue
		}

		if maxDepth > 0 && depth >= maxDepth {
			node.Dirs = append(node.Dirs, TreeNode{
				Name: entry.Name,
				Path: childPath,
			})
			continue
		}

		child, err := buildTree(childPath, includeFiles, maxDepth, depth+1)
		if err != nil {
			return TreeNode{}, err
		}
		node.Dirs = append(node.Dirs, child)
	}

	return node, nil
}

// baseName returns the last segment of a vault-relative path, or "" for the
// vault root.
func baseName(relPath string) string {
	if relPath == "" {
		return ""
	}
	if idx := strings.LastIndex(relPath, "/"); idx >= 0 {
		return relPath[idx+1:]
	}
	return relPath
}

func handleStat(ctx context.Context, req *mcp.CallToolRequest, input StatInput) (*mcp.CallToolResult, StatOutput, error) {
	entryPath := strings.TrimSpace(input.Path)
	if entryPath == "" {
		return &mcp.CallToolResult{IsError: true}, StatOutput{}, fmt.Errorf("path cannot be empty")
	}

	item, err := vaultService.StatEntry(entryPath)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, StatOutput{}, err
	}

	return nil, StatOutput{
		Path:     item.Path,
		Name:     item.Name,
		IsDir:    item.IsDir,
		Size:     item.Size,
		Modified: item.Modified,
		Kind:     item.Kind,
		URI:      item.URI,
	}, nil
}

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	results, err := catalogService.Find(types.FindParams{
		Query:         input.Query,
		UseRegex:      input.UseRegex,
		CaseSensitive: input.CaseSensitive,
		Limit:         input.Limit,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	matches := make([]FindMatch, 0, len(results))
	for _, result := range results {
		matches = append(matches, FindMatch{
			Path: result.Path,
			Kind: result.Kind,
		})
	}

	return nil, FindOutput{
		Results: matches,
		Total:   len(matches),
	}, nil
}

func handleScan(ctx context.Context, req *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	summary, err := catalogService.Scan()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, err
	}

	kinds := make([]ScanKind, 0, len(summary.Kinds))
	for _, kind := range summary.Kinds {
		kinds = append(kinds, ScanKind{
			Kind:  kind.Kind,
			Count: kind.Count,
			Size:  kind.Size,
		})
	}

	return nil, ScanOutput{
		TotalFiles: summary.TotalFiles,
		TotalSize:  summary.TotalSize,
		Kinds:      kinds,
		Largest:    scanItems(summary.Largest),
		Newest:     scanItems(summary.Newest),
	}, nil
}

func scanItems(items []types.ItemInfo) []ScanItem {
	converted := make([]ScanItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, ScanItem{
			Path:     item.Path,
			Size:     item.Size,
			Modified: item.Modified,
			Kind:     item.Kind,
			URI:      item.URI,
		})
	}
	return converted
}
