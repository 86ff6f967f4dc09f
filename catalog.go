package transmog

import (
	"fmt"
)

// Catalog maps every alias a field declares to its metadata entry. Build one
// with [NewCatalog]; it is immutable afterwards, so any number of concurrent
// [Transmogrify] calls may share it.
type Catalog struct {
	fields  []*FieldMetadata
	byID    map[string]*FieldMetadata
	byAlias map[string]*FieldMetadata
}

// NewCatalog validates the supplied metadata and builds the alias index.
// The input slice is copied; later mutation of it does not affect the
// catalog. Two entries with the same id are rejected. Colliding aliases
// across different ids are tolerated (first entry wins), but an exact id
// match always takes precedence during resolution.
func NewCatalog(meta []FieldMetadata) (*Catalog, error) {
	c := &Catalog{
		fields:  make([]*FieldMetadata, 0, len(meta)),
		byID:    make(map[string]*FieldMetadata, len(meta)),
		byAlias: make(map[string]*FieldMetadata, 2*len(meta)),
	}
	for i := range meta {
		f := meta[i]
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.displayName(), err)
		}
		id := lower(f.ID)
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("field %q: duplicate id", f.ID)
		}
		c.fields = append(c.fields, &f)
		c.byID[id] = &f
		for _, alias := range f.aliases() {
			if _, taken := c.byAlias[alias]; !taken {
				c.byAlias[alias] = &f
			}
		}
	}
	return c, nil
}

// Resolve maps a user-supplied key to its field metadata. Matching is
// case-insensitive exact equality against every alias; there is no fuzzy
// matching. ok is false when no field claims the key; that is not an
// error, callers drop such keys.
func (c *Catalog) Resolve(key string) (f *FieldMetadata, ok bool) {
	k := lower(key)
	if f, ok = c.byID[k]; ok {
		return f, true
	}
	f, ok = c.byAlias[k]
	return f, ok
}

// Len returns the number of fields in the catalog.
func (c *Catalog) Len() int {
	return len(c.fields)
}
