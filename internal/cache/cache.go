// Package cache holds loaded source tables for the lifetime of a host
// process. Each upload used to stay resident forever; this registry
// bounds that with an LRU of fixed capacity, so the oldest untouched
// source is evicted when a new one arrives.
package cache

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"logdash/internal/table"
)

// DefaultCapacity is the number of sources kept when the host does not
// configure a bound.
const DefaultCapacity = 16

// Entry is one registered source table.
type Entry struct {
	ID    string
	Name  string
	Table *table.Table
}

// Registry is a bounded LRU mapping generated identifiers to loaded
// tables. It is safe for concurrent use.
type Registry struct {
	entries *lru.Cache[string, *Entry]
}

// NewRegistry creates a registry bounded to capacity sources. A
// capacity below one falls back to DefaultCapacity.
func NewRegistry(capacity int) (*Registry, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[string, *Entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create source cache: %w", err)
	}
	return &Registry{entries: entries}, nil
}

// Register stores a loaded table under a freshly generated identifier
// and returns that identifier. Registering may evict the least recently
// used source.
func (r *Registry) Register(name string, t *table.Table) string {
	id := uuid.NewString()
	r.entries.Add(id, &Entry{ID: id, Name: name, Table: t})
	return id
}

// Get returns the entry for an identifier and marks it recently used.
func (r *Registry) Get(id string) (*Entry, bool) {
	return r.entries.Get(id)
}

// Remove drops a source explicitly.
func (r *Registry) Remove(id string) {
	r.entries.Remove(id)
}

// Len returns the number of resident sources.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// IDs returns the resident identifiers from oldest to newest.
func (r *Registry) IDs() []string {
	return r.entries.Keys()
}
