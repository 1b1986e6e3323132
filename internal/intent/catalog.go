// Package intent holds the static intent catalog: a loaded-once, read-only
// mapping from tag to patterns (training) and response templates (serving).
package intent

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the in-memory intent catalog. Immutable after Load, so
// concurrent reads need no synchronization.
type Catalog struct {
	records []Record
	byTag   map[string]Record
}

// Load reads and validates the catalog from an intents.json file.
// A missing or malformed file is a startup-fatal condition for callers.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent catalog: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse intent catalog: %w", err)
	}
	return New(f.Intents)
}

// New builds a catalog from records, validating uniqueness of tags.
func New(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	byTag := make(map[string]Record, len(records))
	for _, r := range records {
		if _, dup := byTag[r.Tag]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, r.Tag)
		}
		byTag[r.Tag] = r
	}

	return &Catalog{records: records, byTag: byTag}, nil
}

// Get returns the record for a tag.
func (c *Catalog) Get(tag string) (Record, bool) {
	r, ok := c.byTag[tag]
	return r, ok
}

// Records returns all records in catalog order.
func (c *Catalog) Records() []Record {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}
