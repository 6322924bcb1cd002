package types

type (
	// Entry is a single name in a directory listing.
	Entry struct {
		Name  string `json:"name"`
		IsDir bool   `json:"isDir"`
	}

	// FilterConfig contains configuration for the media filter.
	FilterConfig struct {
		IgnoredPatterns   []string `json:"ignoredPatterns"`
		AllowedExtensions []string `json:"allowedExtensions"`
	}
)
