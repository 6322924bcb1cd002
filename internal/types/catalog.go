package types

type (
	// FindParams contains parameters for matching vault paths by name.
	FindParams struct {
		Query         string `json:"query"`
		UseRegex      bool   `json:"useRegex,omitempty"`
		CaseSensitive bool   `json:"caseSensitive,omitempty"`
		Limit         int    `json:"limit,omitempty"`
	}

	// FindResult is a single matching file.
	FindResult struct {
		Path string `json:"path"`
		Kind string `json:"kind,omitempty"`
	}

	// KindStat aggregates count and size for one media kind.
	KindStat struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
		Size  int64  `json:"size"`
	}

	// ScanSummary is the aggregate view of the vault contents.
	ScanSummary struct {
		TotalFiles int        `json:"totalFiles"`
		TotalSize  int64      `json:"totalSize"`
		Kinds      []KindStat `json:"kinds"`
		Largest    []ItemInfo `json:"largest"`
		Newest     []ItemInfo `json:"newest"`
	}
)
