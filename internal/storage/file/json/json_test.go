package json

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/drakos74/news-forest/internal/storage"
)

type Event struct {
	Name  string  `json:"name"`
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

func TestFileStorage_StoreAndLoad(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "reports")
	s := NewFileStorage(dir)

	k := storage.Key{
		Run:   uuid.New().String(),
		Label: "report",
	}

	ev := Event{
		Name:  "test",
		ID:    k.Run,
		Score: 0.75,
	}
	err := s.Store(k, ev)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, k.Path()+".json"))
	assert.NoError(t, err)

	var loaded Event
	err = s.Load(k, &loaded)
	assert.NoError(t, err)
	assert.Equal(t, ev, loaded)

	err = s.Load(storage.Key{Run: "other", Label: "report"}, &loaded)
	assert.True(t, errors.Is(err, storage.NotFoundErr))

}

func TestSave_NotADirectory(t *testing.T) {

	file := filepath.Join(t.TempDir(), "file")
	err := os.WriteFile(file, []byte("x"), 0644)
	assert.NoError(t, err)

	err = Save(file, "value.json", Event{})
	assert.Error(t, err)

}

func TestLoad_Invalid(t *testing.T) {

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{\"name\":"), 0644)
	assert.NoError(t, err)

	var ev Event
	err = Load(dir, "broken.json", &ev)
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr), "unexpected error: %v", err)

}
