package tracker_test

import (
	"path/filepath"
	"testing"

	"github.com/IcodeAlpha/profoodie/internal/storage"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "profoodie.db")
}

func openTracker(t *testing.T, path string) (*tracker.Store, *storage.SQLite) {
	t.Helper()
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	store, err := tracker.New(kv, nil)
	if err != nil {
		t.Fatalf("build tracker: %v", err)
	}
	return store, kv
}
