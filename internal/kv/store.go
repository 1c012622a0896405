package kv

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is matched by every lookup miss.
var ErrNotFound = errors.New("item not found")

// NotFoundError reports a lookup for a key the store does not hold.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNotFound, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Entry is a single key/name pair.
type Entry struct {
	Key   string
	Value string
}

var seed = []Entry{
	{Key: "1", Value: "David Bowie"},
	{Key: "2", Value: "Queen"},
}

// Seed returns the entries every freshly started store holds.
func Seed() []Entry {
	out := make([]Entry, len(seed))
	copy(out, seed)
	return out
}

// Store is an in-memory key to name mapping. All access goes through mu.
type Store struct {
	mu   sync.Mutex
	data map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// NewSeededStore returns a store preloaded with Seed().
func NewSeededStore() *Store {
	store := NewStore()
	for _, e := range seed {
		store.data[e.Key] = e.Value
	}
	return store
}

// Get returns the name stored under key or a *NotFoundError.
func (store *Store) Get(key string) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	v, ok := store.data[key]
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return v, nil
}

// Put inserts or overwrites the name for key. Last write wins.
func (store *Store) Put(key, name string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.data[key] = name
}

// Len returns the number of stored items.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	return len(store.data)
}
