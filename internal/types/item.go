// Package types defines all data structures used across the MCP server.
package types

type (
	// ItemInfo contains metadata about a single vault entry.
	ItemInfo struct {
		Path     string `json:"path"`
		Name     string `json:"name"`
		IsDir    bool   `json:"isDir"`
		Size     int64  `json:"size"`
		Modified int64  `json:"modified"` // timestamp in milliseconds
		Kind     string `json:"kind,omitempty"`
		URI      string `json:"uri,omitempty"`
	}
)
