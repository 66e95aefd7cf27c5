// Package catalog keeps the registry of importable sheet definitions.
//
// The engine's Import and Template functions are generic over the record
// type; HTTP handlers are not. A Definition erases the type parameter
// behind closures so the web layer can route on a string key, while New
// preserves full type safety at the registration site.
package catalog

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/sheetbind/sheetbind"
)

// Info describes a registered sheet definition for listings.
type Info struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Sheet   string   `json:"sheet"`
	Columns []string `json:"columns"`
}

// ImportSummary is the type-erased outcome of one import call.
type ImportSummary struct {
	TemplateValid bool                  `json:"templateValid"`
	Imported      int                   `json:"imported"`
	Records       any                   `json:"records"`
	Reports       []sheetbind.RowReport `json:"reports"`
}

// Definition couples a schema's metadata with type-erased import and
// template operations.
type Definition struct {
	Info          Info
	Import        func(r io.Reader) (*ImportSummary, error)
	WriteTemplate func(w io.Writer) error
}

// New builds a Definition from a typed schema.
func New[T any](key, label string, s sheetbind.Schema[T], opts ...sheetbind.Option) Definition {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = c.Display
	}
	return Definition{
		Info: Info{Key: key, Label: label, Sheet: s.Sheet, Columns: cols},
		Import: func(r io.Reader) (*ImportSummary, error) {
			res, err := sheetbind.Import(r, s, opts...)
			if err != nil {
				return nil, err
			}
			return &ImportSummary{
				TemplateValid: res.TemplateValid,
				Imported:      len(res.Records),
				Records:       res.Records,
				Reports:       res.Reports,
			}, nil
		},
		WriteTemplate: func(w io.Writer) error {
			return sheetbind.WriteTemplate(w, s)
		},
	}
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds a definition to the registry.
// Panics if a definition with the same key is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("sheet definition already registered: %s", def.Info.Key))
	}
	registry[def.Info.Key] = def
}

// Get returns a definition by key.
// Returns false if not found.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered definitions, sorted by key for consistent
// ordering.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})
	return result
}

// Count returns the number of registered definitions.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered definitions.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Definition)
}
