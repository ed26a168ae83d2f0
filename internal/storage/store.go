package storage

import (
	"errors"
	"fmt"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for the artifacts of a pipeline run.
type Key struct {
	Run   string `json:"run"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%s", k.Run, k.Label)
}

// Persistence stores and loads values for a key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
