package calcpro

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func newTestStore(t *testing.T, options ...StoreOption) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := Open("data", append([]StoreOption{WithFs(fs), WithStoreNowFunc(fixedNowFunc)}, options...)...)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	return store, fs
}

func TestStorePutGet(t *testing.T) {
	store, fs := newTestStore(t)

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on missing key = %v, want ErrNotFound", err)
	}
	if store.Has("theme") {
		t.Errorf("Has on missing key should be false")
	}

	if err := store.Put("theme", []byte("light")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := store.Get("theme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "light" {
		t.Errorf("Get = %q, want light", got)
	}
	if !store.Has("theme") {
		t.Errorf("Has should be true after Put")
	}

	exists, _ := afero.Exists(fs, filepath.Join("data", "records", "theme.json"))
	if !exists {
		t.Errorf("expected record file on the store filesystem")
	}

	if err := store.Put("theme", []byte("dark")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if got, _ := store.Get("theme"); string(got) != "dark" {
		t.Errorf("overwrite: Get = %q, want dark", got)
	}
}

func TestStoreCorruptRecords(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not json", "{broken"},
		{"checksum mismatch", `{"key":"theme","checksum":"0000","updatedAt":"2020-03-01T00:00:00Z","value":"bGlnaHQ="}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, fs := newTestStore(t)
			path := filepath.Join("data", "records", "theme.json")
			if err := afero.WriteFile(fs, path, []byte(tc.data), 0o644); err != nil {
				t.Fatalf("Failed to write record: %v", err)
			}

			if _, err := store.Get("theme"); !errors.Is(err, ErrCorrupt) {
				t.Errorf("Get = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestStoreInvalidKeys(t *testing.T) {
	store, _ := newTestStore(t)

	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		if err := store.Put(key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Put(%q) = %v, want ErrInvalidKey", key, err)
		}
		if _, err := store.Get(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Get(%q) = %v, want ErrInvalidKey", key, err)
		}
		if err := store.Delete(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Delete(%q) = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestStoreKeysDeleteClear(t *testing.T) {
	store, _ := newTestStore(t)

	for _, key := range []string{"theme", "history", "angle"} {
		if err := store.Put(key, []byte(key)); err != nil {
			t.Fatalf("Put(%q) failed: %v", key, err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if strings.Join(keys, ",") != "angle,history,theme" {
		t.Errorf("Keys = %v", keys)
	}

	if err := store.Delete("angle"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete("angle"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
	if store.Has("angle") {
		t.Errorf("angle should be gone")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	keys, err = store.Keys()
	if err != nil {
		t.Fatalf("Keys after Clear failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys after Clear = %v", keys)
	}
}

func TestStoreStats(t *testing.T) {
	now := fixedNowFunc()
	store, fs := newTestStore(t, WithStoreNowFunc(func() time.Time { return now }))

	if err := store.Put("history", []byte("[]")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	now = now.Add(time.Hour)
	if err := store.Put("theme", []byte("dark")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	now = now.Add(time.Hour)
	if err := afero.WriteFile(fs, filepath.Join("data", "records", "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("Failed to write record: %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Records != 3 || stats.Corrupt != 1 {
		t.Errorf("records = %d corrupt = %d, want 3 and 1", stats.Records, stats.Corrupt)
	}
	if stats.OldestUpdate != 2*time.Hour || stats.NewestUpdate != time.Hour {
		t.Errorf("oldest = %v newest = %v, want 2h and 1h", stats.OldestUpdate, stats.NewestUpdate)
	}
	if stats.TotalSize <= 0 {
		t.Errorf("total size = %d, want > 0", stats.TotalSize)
	}
}

func TestCalculatorPersistence(t *testing.T) {
	store := OpenTemp()

	c := New(WithStore(store), WithNowFunc(fixedNowFunc))
	press(t, c, "2 + 3 =")
	c.ToggleTheme()

	restored := New(WithStore(store))
	if restored.History().Len() != 1 {
		t.Fatalf("history len = %d, want 1", restored.History().Len())
	}
	if e, _ := restored.History().At(0); e.Expression != "2 + 3" || e.Result != 5 {
		t.Errorf("restored entry = %+v", e)
	}
	if restored.Snapshot().Theme != ThemeLight {
		t.Errorf("theme = %s, want light", restored.Snapshot().Theme)
	}

	restored.ClearHistory()
	if New(WithStore(store)).History().Len() != 0 {
		t.Errorf("cleared history should be persisted")
	}
}

func TestCalculatorCorruptPersistence(t *testing.T) {
	store := OpenTemp()
	if err := store.Put(HistoryKey, []byte("not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ThemeKey, []byte("purple")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var buf bytes.Buffer
	c := New(WithStore(store), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	if c.History().Len() != 0 {
		t.Errorf("corrupt history should load as empty")
	}
	if c.Snapshot().Theme != ThemeDark {
		t.Errorf("unknown theme should fall back to dark")
	}
	if !strings.Contains(buf.String(), "discarding corrupt history") {
		t.Errorf("expected a warning about corrupt history, log was:\n%s", buf.String())
	}

	out, err := press(t, c, "1 + 1 =")
	if err != nil || out.Display != "2" {
		t.Errorf("calculator unusable after corrupt load: %q, %v", out.Display, err)
	}
}
