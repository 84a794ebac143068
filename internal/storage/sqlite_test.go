package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/IcodeAlpha/profoodie/internal/storage"
)

func newTestStore(t *testing.T) *storage.SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profoodie.db")
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return kv
}

func TestPutGetRoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	defer kv.Close()

	if _, ok, err := kv.Get("meals"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := kv.Put("meals", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	value, ok, err := kv.Get("meals")
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if string(value) != `[]` {
		t.Fatalf("expected [], got %q", value)
	}

	if err := kv.Put("meals", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = kv.Get("meals")
	if string(value) != `[{"id":"a"}]` {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	defer kv.Close()

	if err := kv.Put("user", []byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Delete("user"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := kv.Delete("user"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
	if _, ok, _ := kv.Get("user"); ok {
		t.Fatal("expected key gone after delete")
	}
}

func TestKeysSorted(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	defer kv.Close()

	for _, key := range []string{"recipes", "goals", "meals"} {
		if err := kv.Put(key, []byte(`{}`)); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"goals", "meals", "recipes"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profoodie.db")
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := kv.Put("goals", []byte(`{"calories":2000}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get("goals")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(value) != `{"calories":2000}` {
		t.Fatalf("unexpected value after reopen: %q", value)
	}
}
