package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mediavault/mediavault-mcp/internal/types"
	"github.com/mediavault/mediavault-mcp/internal/vault"
)

func setupTestVault(t *testing.T) (string, *Service) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "mediavault-catalog-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	svc := New(vault.New(tmpDir, nil, false))
	return tmpDir, svc
}

func cleanupTestVault(t *testing.T, path string) {
	t.Helper()
	os.RemoveAll(path)
}

func TestService_Find(t *testing.T) {
	t.Run("finds matching paths", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.MkdirAll(filepath.Join(tmpDir, "photos"), 0o755)
		os.MkdirAll(filepath.Join(tmpDir, "videos"), 0o755)
		os.WriteFile(filepath.Join(tmpDir, "photos", "beach.jpg"), []byte("jpg"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "photos", "sunset.jpg"), []byte("jpg"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "videos", "birthday.mp4"), []byte("mp4"), 0o644)

		results, err := svc.Find(types.FindParams{Query: "sunset"})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}

		if len(results) != 1 {
			t.Fatalf("Find() returned %d results, want 1", len(results))
		}
		if results[0].Path != "photos/sunset.jpg" {
			t.Errorf("Path = %q, want photos/sunset.jpg", results[0].Path)
		}
		if results[0].Kind != "image" {
			t.Errorf("Kind = %q, want image", results[0].Kind)
		}
	})

	t.Run("case insensitive by default", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.WriteFile(filepath.Join(tmpDir, "sunset.jpg"), []byte("jpg"), 0o644)

		results, err := svc.Find(types.FindParams{Query: "SUNSET"})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 1 {
			t.Errorf("Find() returned %d results, want 1", len(results))
		}
	})

	t.Run("case sensitive matching", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.WriteFile(filepath.Join(tmpDir, "sunset.jpg"), []byte("jpg"), 0o644)

		results, err := svc.Find(types.FindParams{Query: "SUNSET", CaseSensitive: true})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Find() returned %d results, want 0", len(results))
		}
	})

	t.Run("regex matching", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.WriteFile(filepath.Join(tmpDir, "beach.jpg"), []byte("jpg"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "birthday.mp4"), []byte("mp4"), 0o644)

		results, err := svc.Find(types.FindParams{Query: `\.mp4$`, UseRegex: true})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 1 || results[0].Path != "birthday.mp4" {
			t.Errorf("results = %v, want [birthday.mp4]", results)
		}
	})

	t.Run("literal query escapes regex characters", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.WriteFile(filepath.Join(tmpDir, "IMG (1).jpg"), []byte("jpg"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "IMG1.jpg"), []byte("jpg"), 0o644)

		results, err := svc.Find(types.FindParams{Query: "(1)"})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 1 || results[0].Path != "IMG (1).jpg" {
			t.Errorf("results = %v, want [IMG (1).jpg]", results)
		}
	})

	t.Run("invalid regex fails", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		_, err := svc.Find(types.FindParams{Query: "[", UseRegex: true})
		if err == nil {
			t.Fatal("Find() should fail for an invalid regex")
		}

		var catErr *CatalogError
		if !errors.As(err, &catErr) {
			t.Errorf("error = %T, want *CatalogError", err)
		}
		if !strings.Contains(err.Error(), "invalid regex pattern") {
			t.Errorf("Error should mention invalid regex: %v", err)
		}
	})

	t.Run("empty query fails", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		_, err := svc.Find(types.FindParams{Query: "   "})
		if err == nil {
			t.Fatal("Find() should fail for an empty query")
		}
		if !strings.Contains(err.Error(), "find query cannot be empty") {
			t.Errorf("Error should mention empty query: %v", err)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		for i := range 10 {
			os.WriteFile(filepath.Join(tmpDir, fmt.Sprintf("holiday%02d.jpg", i)), []byte("jpg"), 0o644)
		}

		results, err := svc.Find(types.FindParams{Query: "holiday", Limit: 3})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 3 {
			t.Errorf("Find() returned %d results, want 3", len(results))
		}
	})

	t.Run("default limit is 50", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		for i := range 60 {
			os.WriteFile(filepath.Join(tmpDir, fmt.Sprintf("holiday%02d.jpg", i)), []byte("jpg"), 0o644)
		}

		results, err := svc.Find(types.FindParams{Query: "holiday"})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 50 {
			t.Errorf("Find() returned %d results, want 50", len(results))
		}
	})

	t.Run("limit is capped at 200", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		for i := range 250 {
			os.WriteFile(filepath.Join(tmpDir, fmt.Sprintf("holiday%03d.jpg", i)), []byte("jpg"), 0o644)
		}

		results, err := svc.Find(types.FindParams{Query: "holiday", Limit: 500})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(results) != 200 {
			t.Errorf("Find() returned %d results, want 200", len(results))
		}
	})
}

func TestService_Scan(t *testing.T) {
	t.Run("aggregates totals", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		os.MkdirAll(filepath.Join(tmpDir, "photos"), 0o755)
		os.MkdirAll(filepath.Join(tmpDir, "videos"), 0o755)
		os.WriteFile(filepath.Join(tmpDir, "photos", "beach.jpg"), []byte("aaaa"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "photos", "sunset.jpg"), []byte("bb"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "videos", "clip.mp4"), []byte("cccccc"), 0o644)
		os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("d"), 0o644)

		summary, err := svc.Scan()
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}

		if summary.TotalFiles != 4 {
			t.Errorf("TotalFiles = %d, want 4", summary.TotalFiles)
		}
		if summary.TotalSize != 13 {
			t.Errorf("TotalSize = %d, want 13", summary.TotalSize)
		}

		if len(summary.Kinds) != 3 {
			t.Fatalf("got %d kinds, want 3: %v", len(summary.Kinds), summary.Kinds)
		}
		if summary.Kinds[0].Kind != "image" || summary.Kinds[0].Count != 2 || summary.Kinds[0].Size != 6 {
			t.Errorf("Kinds[0] = %+v, want image count 2 size 6", summary.Kinds[0])
		}
		if summary.Kinds[1].Kind != "other" || summary.Kinds[1].Count != 1 || summary.Kinds[1].Size != 1 {
			t.Errorf("Kinds[1] = %+v, want other count 1 size 1", summary.Kinds[1])
		}
		if summary.Kinds[2].Kind != "video" || summary.Kinds[2].Count != 1 || summary.Kinds[2].Size != 6 {
			t.Errorf("Kinds[2] = %+v, want video count 1 size 6", summary.Kinds[2])
		}

		if len(summary.Largest) != 4 {
			t.Fatalf("got %d largest, want 4", len(summary.Largest))
		}
		if summary.Largest[0].Path != "videos/clip.mp4" {
			t.Errorf("Largest[0].Path = %q, want videos/clip.mp4", summary.Largest[0].Path)
		}
		if !strings.HasPrefix(summary.Largest[0].URI, "file:///") {
			t.Errorf("Largest[0].URI = %q, want file:/// prefix", summary.Largest[0].URI)
		}

		if len(summary.Newest) != 4 {
			t.Errorf("got %d newest, want 4", len(summary.Newest))
		}
	})

	t.Run("top lists are capped", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		for i := range 7 {
			content := strings.Repeat("x", i+1)
			os.WriteFile(filepath.Join(tmpDir, fmt.Sprintf("file%d.jpg", i)), []byte(content), 0o644)
		}

		summary, err := svc.Scan()
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}

		if len(summary.Largest) != 5 {
			t.Errorf("got %d largest, want 5", len(summary.Largest))
		}
		if summary.Largest[0].Size != 7 {
			t.Errorf("Largest[0].Size = %d, want 7", summary.Largest[0].Size)
		}
		if len(summary.Newest) != 5 {
			t.Errorf("got %d newest, want 5", len(summary.Newest))
		}
	})

	t.Run("empty vault", func(t *testing.T) {
		tmpDir, svc := setupTestVault(t)
		defer cleanupTestVault(t, tmpDir)

		summary, err := svc.Scan()
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}

		if summary.TotalFiles != 0 {
			t.Errorf("TotalFiles = %d, want 0", summary.TotalFiles)
		}
		if summary.TotalSize != 0 {
			t.Errorf("TotalSize = %d, want 0", summary.TotalSize)
		}
		if len(summary.Kinds) != 0 {
			t.Errorf("Kinds = %v, want empty", summary.Kinds)
		}
		if len(summary.Largest) != 0 {
			t.Errorf("Largest = %v, want empty", summary.Largest)
		}
	})
}
