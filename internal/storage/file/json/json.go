package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/news-forest/internal/storage"
)

// Save writes value as indented json to dir/name, creating dir when it does not exist yet.
func Save(dir string, name string, value interface{}) error {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return fmt.Errorf("report location '%s' exists and is not a directory", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot prepare report directory '%s': %w", dir, err)
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode %T for '%s': %w", value, name, err)
	}
	b = append(b, '\n')

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("cannot write report '%s': %w", p, err)
	}
	return nil
}

// Load decodes the json stored at dir/name into value.
// A missing file is storage.NotFoundErr, undecodable content storage.CouldNotLoadErr.
func Load(dir string, name string, value interface{}) error {
	p := filepath.Join(dir, name)
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("no report at '%s' (%v): %w", p, err, storage.NotFoundErr)
	}
	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("report '%s' is not valid json (%v): %w", p, err, storage.CouldNotLoadErr)
	}
	return nil
}

// FileStorage is a json file backed persistence rooted at a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a storage that writes one json file per key under the given directory.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) Store(k storage.Key, value interface{}) error {
	return Save(s.dir, fileName(k), value)
}

func (s *FileStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir, fileName(k), value)
}

func fileName(k storage.Key) string {
	return fmt.Sprintf("%s.json", k.Path())
}
