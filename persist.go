package gui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Storage persists small blobs of state between runs: window geometry,
// open panels, dock arrangements. Keys map to strings; structured values
// go through SaveValue/LoadValue which encode them as TOML.
//
// Implementations must treat missing keys as absent, not as errors.
type Storage interface {
	// GetString returns the blob stored under key, ok=false if absent.
	GetString(key string) (string, bool)

	// SetString stores a blob under key, replacing any previous value.
	SetString(key, value string)

	// Flush writes pending changes to the backing medium.
	Flush() error
}

// Well-known storage keys.
const (
	StorageKeyWindow = "window"
	StorageKeyMemory = "memory"
)

// WindowGeometry is the host window placement saved between runs.
type WindowGeometry struct {
	X         int  `toml:"x"`
	Y         int  `toml:"y"`
	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Maximized bool `toml:"maximized"`
}

// SaveValue encodes a value as TOML and stores it under key.
func SaveValue[T any](s Storage, key string, value T) {
	data, err := toml.Marshal(value)
	if err != nil {
		guiLogger.Warn("storage encode failed", "key", key, "err", err)
		return
	}
	s.SetString(key, string(data))
}

// LoadValue decodes the value stored under key. An absent key returns the
// default silently; a malformed blob returns the default and logs, so a
// corrupt settings file degrades to first-run behavior instead of an
// error the user cannot act on.
func LoadValue[T any](s Storage, key string, def T) T {
	blob, ok := s.GetString(key)
	if !ok {
		return def
	}
	var value T
	if err := toml.Unmarshal([]byte(blob), &value); err != nil {
		guiLogger.Warn("storage blob malformed, using defaults", "key", key, "err", err)
		return def
	}
	return value
}

// MemoryStorage is a map-backed Storage for tests and ephemeral sessions.
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) SetString(key, value string) {
	m.values[key] = value
}

func (m *MemoryStorage) Flush() error { return nil }

// FileStorage is a Storage backed by one TOML file of key/blob pairs.
// Reads are served from memory; Flush rewrites the file atomically via a
// temp file and rename, so a crash mid-write leaves the old file intact.
type FileStorage struct {
	path   string
	values map[string]string
	dirty  bool
}

// OpenFileStorage loads (or initializes) storage at path. A missing file
// is a normal first run; an unreadable or malformed file logs and starts
// empty rather than failing the app over its settings.
func OpenFileStorage(path string) *FileStorage {
	s := &FileStorage{
		path:   path,
		values: make(map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			guiLogger.Warn("storage file unreadable, starting empty", "path", path, "err", err)
		}
		return s
	}
	if err := toml.Unmarshal(data, &s.values); err != nil {
		guiLogger.Warn("storage file malformed, starting empty", "path", path, "err", err)
		s.values = make(map[string]string)
	}
	return s
}

func (s *FileStorage) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) SetString(key, value string) {
	if old, ok := s.values[key]; ok && old == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

// Flush writes the file if anything changed since the last flush.
func (s *FileStorage) Flush() error {
	if !s.dirty {
		return nil
	}
	data, err := toml.Marshal(s.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
