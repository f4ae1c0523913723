// Package store holds todo records in process memory.
package store

import (
	"errors"
	"sync"

	"github.com/ytakahashi/todo-api/internal/models"
)

// ErrNotFound is returned when a todo is not found in the store.
var ErrNotFound = errors.New("todo not found")

// TodoStore is an in-memory mapping from todo ID to record. Records live
// from Save until Delete; nothing survives a restart. Echo serves each
// request on its own goroutine, so the map is guarded by a mutex, but no
// isolation exists beyond that: concurrent writes to the same ID are
// last-write-wins.
type TodoStore struct {
	mu    sync.RWMutex
	todos map[string]models.Todo
}

// NewTodoStore creates an empty store.
func NewTodoStore() *TodoStore {
	return &TodoStore{todos: make(map[string]models.Todo)}
}

// Save inserts or replaces the record under todo.ID.
func (s *TodoStore) Save(todo models.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos[todo.ID] = todo
}

// Get retrieves a todo by ID, or ErrNotFound if it is absent.
func (s *TodoStore) Get(id string) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

// List returns every record in the store. The order is unspecified. An
// empty store yields an empty slice, not nil.
func (s *TodoStore) List() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	todos := make([]models.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		todos = append(todos, todo)
	}
	return todos
}

// Delete removes a todo by ID, or returns ErrNotFound if it is absent.
func (s *TodoStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
