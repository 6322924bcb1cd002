package uri

import "testing"

func TestFileURI(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		relPath string
		want    string
	}{
		{
			name:    "simple path",
			root:    "/mnt/vault",
			relPath: "photos/beach.jpg",
			want:    "file:///mnt/vault/photos/beach.jpg",
		},
		{
			name:    "leading slash in relative path",
			root:    "/mnt/vault",
			relPath: "/photos/beach.jpg",
			want:    "file:///mnt/vault/photos/beach.jpg",
		},
		{
			name:    "path with spaces",
			root:    "/mnt/my vault",
			relPath: "family photos/summer 2024.jpg",
			want:    "file:///mnt/my%20vault/family%20photos/summer%202024.jpg",
		},
		{
			name:    "path with special chars",
			root:    "/mnt/vault",
			relPath: "photos/IMG (1).jpg",
			want:    "file:///mnt/vault/photos/IMG%20%281%29.jpg",
		},
		{
			name:    "empty relative path",
			root:    "/mnt/vault",
			relPath: "",
			want:    "file:///mnt/vault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileURI(tt.root, tt.relPath)
			if got != tt.want {
				t.Errorf("FileURI() = %q, want %q", got, tt.want)
			}
		})
	}
}
