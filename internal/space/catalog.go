package space

import (
	"fmt"
)

// Catalog is an ordered set of definitions keyed by id.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog builds a catalog. A definition whose id is already present
// replaces the earlier one in place, so files can override built-ins
// without changing their order.
func NewCatalog(defs ...Definition) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, d := range defs {
		c.put(d)
	}
	return c
}

func (c *Catalog) put(d Definition) {
	if i, ok := c.index[d.ID]; ok {
		c.defs[i] = d
		return
	}
	c.index[d.ID] = len(c.defs)
	c.defs = append(c.defs, d)
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (Definition, error) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownSpace, id)
	}
	return c.defs[i], nil
}

// All returns the definitions in order.
func (c *Catalog) All() []Definition {
	return append([]Definition(nil), c.defs...)
}

// IDs returns the ids in order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
