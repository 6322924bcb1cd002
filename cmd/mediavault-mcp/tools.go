package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type (
	// ListInput is the input for the list_directory tool.
	ListInput struct {
		Path      string `json:"path,omitempty" jsonschema:"the vault-relative path of the directory to list (empty or . for the vault root)"`
		DirsOnly  bool   `json:"dirsOnly,omitempty" jsonschema:"only include directories in the listing"`
		FilesOnly bool   `json:"filesOnly,omitempty" jsonschema:"only include files in the listing"`
	}

	// ListEntry is a single entry in a directory listing.
	ListEntry struct {
		Name  string `json:"name" jsonschema:"the entry name"`
		IsDir bool   `json:"isDir" jsonschema:"whether the entry is a directory"`
	}

	// ListOutput is the output for the list_directory tool.
	ListOutput struct {
		Path    string      `json:"path" jsonschema:"the vault-relative path that was listed"`
		Entries []ListEntry `json:"entries" jsonschema:"the entries in the directory"`
	}

	// WalkInput is the input for the walk_vault tool.
	WalkInput struct{}

	// WalkOutput is the output for the walk_vault tool.
	WalkOutput struct {
		Files []string `json:"files" jsonschema:"vault-relative paths of all files in the vault"`
		Count int      `json:"count" jsonschema:"the number of files found"`
	}

	// TreeInput is the input for the vault_tree tool.
	TreeInput struct {
		Path         string `json:"path,omitempty" jsonschema:"the vault-relative path to start from (empty or . for the vault root)"`
		MaxDepth     int    `json:"maxDepth,omitempty" jsonschema:"maximum directory depth to descend (0 means unlimited)"`
		IncludeFiles bool   `json:"includeFiles,omitempty" jsonschema:"include file names in the tree"`
	}

	// TreeNode is a directory in a vault tree.
	TreeNode struct {
		Name  string     `json:"name" jsonschema:"the directory name"`
		Path  string     `json:"path" jsonschema:"the vault-relative path of the directory"`
		Dirs  []TreeNode `json:"dirs,omitempty" jsonschema:"subdirectories"`
		Files []string   `json:"files,omitempty" jsonschema:"file names in this directory"`
	}

	// TreeOutput is the output for the vault_tree tool.
	TreeOutput struct {
		Root TreeNode `json:"root" jsonschema:"the tree rooted at the requested directory"`
	}

	// StatInput is the input for the stat_entry tool.
	StatInput struct {
		Path string `json:"path" jsonschema:"the vault-relative path of the entry"`
	}

	// StatOutput is the output for the stat_entry tool.
	StatOutput struct {
		Path     string `json:"path" jsonschema:"the vault-relative path of the entry"`
		Name     string `json:"name" jsonschema:"the entry name"`
		IsDir    bool   `json:"isDir" jsonschema:"whether the entry is a directory"`
		Size     int64  `json:"size" jsonschema:"the size in bytes (0 for directories)"`
		Modified int64  `json:"modified" jsonschema:"the modification time as a Unix timestamp in milliseconds"`
		Kind     string `json:"kind,omitempty" jsonschema:"the media kind (image, video, audio, or other)"`
		URI      string `json:"uri,omitempty" jsonschema:"the file:// URI of the entry"`
	}

	// FindInput is the input for the find_media tool.
	FindInput struct {
		Query         string `json:"query" jsonschema:"the text or regex pattern to match against file paths"`
		UseRegex      bool   `json:"useRegex,omitempty" jsonschema:"treat the query as a regular expression"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"match case sensitively"`
		Limit         int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50, max 200)"`
	}

	// FindMatch is a single find result.
	FindMatch struct {
		Path string `json:"path" jsonschema:"the vault-relative path of the file"`
		Kind string `json:"kind" jsonschema:"the media kind (image, video, audio, or other)"`
	}

	// FindOutput is the output for the find_media tool.
	FindOutput struct {
		Results []FindMatch `json:"results" jsonschema:"the matching files"`
		Total   int         `json:"total" jsonschema:"the number of matches returned"`
	}

	// ScanInput is the input for the scan_vault tool.
	ScanInput struct{}

	// ScanKind is a per-kind total in a vault scan.
	ScanKind struct {
		Kind  string `json:"kind" jsonschema:"the media kind"`
		Count int    `json:"count" jsonschema:"the number of files of this kind"`
		Size  int64  `json:"size" jsonschema:"the total size in bytes of files of this kind"`
	}

	// ScanItem is a notable file in a vault scan.
	ScanItem struct {
		Path     string `json:"path" jsonschema:"the vault-relative path of the file"`
		Size     int64  `json:"size" jsonschema:"the size in bytes"`
		Modified int64  `json:"modified" jsonschema:"the modification time as a Unix timestamp in milliseconds"`
		Kind     string `json:"kind,omitempty" jsonschema:"the media kind"`
		URI      string `json:"uri,omitempty" jsonschema:"the file:// URI of the file"`
	}

	// ScanOutput is the output for the scan_vault tool.
	ScanOutput struct {
		TotalFiles int        `json:"totalFiles" jsonschema:"the number of files in the vault"`
		TotalSize  int64      `json:"totalSize" jsonschema:"the total size in bytes of all files"`
		Kinds      []ScanKind `json:"kinds" jsonschema:"per-kind totals, sorted by kind"`
		Largest    []ScanItem `json:"largest" jsonschema:"the largest files in the vault"`
		Newest     []ScanItem `json:"newest" jsonschema:"the most recently modified files in the vault"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_directory",
		Description: "List the entries of a directory in the vault. Returns names and directory flags; junk files like .DS_Store and Thumbs.db are filtered out.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_vault",
		Description: "Recursively enumerate every file in the vault. Returns vault-relative paths with forward slashes.",
	}, handleWalk)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "vault_tree",
		Description: "Build a nested directory tree of the vault, optionally including file names and limiting depth.",
	}, handleTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stat_entry",
		Description: "Get metadata for a single file or directory: size, modification time, media kind, and file:// URI.",
	}, handleStat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_media",
		Description: "Find files whose vault-relative path matches a text query or regular expression.",
	}, handleFind)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_vault",
		Description: "Scan the whole vault and report collection statistics: totals, per-kind breakdown, and the largest and newest files.",
	}, handleScan)
}
