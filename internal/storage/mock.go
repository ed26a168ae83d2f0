package storage

import "fmt"

// MockStorage keeps the stored values in memory.
type MockStorage struct {
	Elements map[Key]interface{}
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key]interface{})}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.Elements[k] = value
	return nil
}

func (m *MockStorage) Load(k Key, value interface{}) error {
	if _, ok := m.Elements[k]; !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	return nil
}
