package gui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frameloop/gui"
)

type sessionPrefs struct {
	Name  string  `toml:"name"`
	Scale float32 `toml:"scale"`
	Dark  bool    `toml:"dark"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := gui.NewMemoryStorage()
	want := sessionPrefs{Name: "main", Scale: 1.5, Dark: true}

	gui.SaveValue(store, "prefs", want)
	got := gui.LoadValue(store, "prefs", sessionPrefs{})

	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadAbsentKeyReturnsDefault(t *testing.T) {
	store := gui.NewMemoryStorage()
	def := sessionPrefs{Name: "default", Scale: 1}

	got := gui.LoadValue(store, "missing", def)
	if got != def {
		t.Errorf("absent key: got %+v, want the default %+v", got, def)
	}
}

func TestLoadMalformedBlobReturnsDefault(t *testing.T) {
	store := gui.NewMemoryStorage()
	store.SetString("prefs", "not [valid toml ===")
	def := sessionPrefs{Name: "default"}

	got := gui.LoadValue(store, "prefs", def)
	if got != def {
		t.Errorf("malformed blob: got %+v, want the default %+v", got, def)
	}
}

func TestWindowGeometryRoundTrip(t *testing.T) {
	store := gui.NewMemoryStorage()
	want := gui.WindowGeometry{X: 40, Y: 60, Width: 1280, Height: 720, Maximized: true}

	gui.SaveValue(store, gui.StorageKeyWindow, want)
	got := gui.LoadValue(store, gui.StorageKeyWindow, gui.WindowGeometry{})

	if got != want {
		t.Errorf("geometry round trip: got %+v, want %+v", got, want)
	}
}

func TestFileStoragePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	store := gui.OpenFileStorage(path)
	gui.SaveValue(store, "prefs", sessionPrefs{Name: "saved", Scale: 2})
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reopened := gui.OpenFileStorage(path)
	got := gui.LoadValue(reopened, "prefs", sessionPrefs{})
	if got.Name != "saved" || got.Scale != 2 {
		t.Errorf("reopened store: got %+v", got)
	}
}

func TestFileStorageFlushSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	store := gui.OpenFileStorage(path)
	store.SetString("k", "v")
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	first, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	// Writing the same value again leaves the store clean.
	store.SetString("k", "v")
	if err := store.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	second, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Error("a clean store should not rewrite its file")
	}
}

func TestFileStorageMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.toml")

	store := gui.OpenFileStorage(path)
	if _, ok := store.GetString("anything"); ok {
		t.Error("a fresh store should have no keys")
	}
}

func TestFileStorageMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("[[[ not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := gui.OpenFileStorage(path)
	if _, ok := store.GetString("anything"); ok {
		t.Error("a corrupt settings file should degrade to first-run behavior")
	}
}
